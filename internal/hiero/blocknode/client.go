package blocknode

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcRetry "github.com/grpc-ecosystem/go-grpc-middleware/retry"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var subscribeStreamDesc = grpc.StreamDesc{
	StreamName:    "subscribeBlockStream",
	ServerStreams: true,
}

// GRPCClient talks to one block node over its status and streaming ports.
type GRPCClient struct {
	status    *grpc.ClientConn
	streaming *grpc.ClientConn
}

// NewClient creates the gRPC channels of a block node. Channels connect lazily.
func NewClient(logger *zap.Logger, node NodeConfig, maxResponseSize int) (*GRPCClient, error) {
	return newClient(logger, node.StatusEndpoint(), node.StreamingEndpoint(), maxResponseSize)
}

func newClient(logger *zap.Logger, statusTarget, streamingTarget string, maxResponseSize int, extra ...grpc.DialOption) (*GRPCClient, error) {
	logger = logger.Named("blocknode_grpc")

	statusOpts := append(dialOptions(maxResponseSize), extra...)
	statusOpts = append(statusOpts,
		grpc.WithUnaryInterceptor(grpcMiddleware.ChainUnaryClient(
			grpcPrometheus.UnaryClientInterceptor,
			grpcZap.UnaryClientInterceptor(logger),
			grpcRetry.UnaryClientInterceptor(
				grpcRetry.WithMax(statusRetries),
				grpcRetry.WithBackoff(grpcRetry.BackoffLinear(statusRetryBackoff)),
			),
		)),
	)
	status, err := grpc.NewClient(statusTarget, statusOpts...)
	if err != nil {
		return nil, fmt.Errorf("create status channel %s: %w", statusTarget, err)
	}

	streamingOpts := append(dialOptions(maxResponseSize), extra...)
	streamingOpts = append(streamingOpts,
		grpc.WithStreamInterceptor(grpcMiddleware.ChainStreamClient(
			grpcPrometheus.StreamClientInterceptor,
			grpcZap.StreamClientInterceptor(logger),
		)),
	)
	streaming, err := grpc.NewClient(streamingTarget, streamingOpts...)
	if err != nil {
		_ = status.Close()
		return nil, fmt.Errorf("create streaming channel %s: %w", streamingTarget, err)
	}

	return &GRPCClient{status: status, streaming: streaming}, nil
}

func dialOptions(maxResponseSize int) []grpc.DialOption {
	callOpts := []grpc.CallOption{grpc.ForceCodec(codec{})}
	if maxResponseSize > 0 {
		callOpts = append(callOpts, grpc.MaxCallRecvMsgSize(maxResponseSize))
	}
	return []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(callOpts...),
	}
}

// ServerStatus asks the node for its available block range.
func (c *GRPCClient) ServerStatus(ctx context.Context) (*blockstream.ServerStatusResponse, error) {
	resp := new(blockstream.ServerStatusResponse)
	if err := c.status.Invoke(ctx, serverStatusMethod, &blockstream.ServerStatusRequest{}, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Subscribe opens a server stream of blocks. The stream ends when ctx is canceled.
func (c *GRPCClient) Subscribe(ctx context.Context, req *blockstream.SubscribeStreamRequest) (Stream, error) {
	stream, err := c.streaming.NewStream(ctx, &subscribeStreamDesc, subscribeMethod)
	if err != nil {
		return nil, err
	}
	if err = stream.SendMsg(req); err != nil {
		return nil, err
	}
	if err = stream.CloseSend(); err != nil {
		return nil, err
	}
	return &subscription{stream: stream}, nil
}

// Close closes both channels.
func (c *GRPCClient) Close() error {
	return multierror.Append(nil, c.status.Close(), c.streaming.Close()).ErrorOrNil()
}

type subscription struct {
	stream grpc.ClientStream
}

func (s *subscription) Recv() (*blockstream.SubscribeStreamResponse, error) {
	resp := new(blockstream.SubscribeStreamResponse)
	if err := s.stream.RecvMsg(resp); err != nil {
		return nil, err
	}
	return resp, nil
}
