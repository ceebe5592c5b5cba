package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goodnatureofminers/hiero-importer/internal/clock"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/archive"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blocknode"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/chain"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/config"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/cutover"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/downloader"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/persister"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/repository/clickhouse"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/service/importer"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/transformer"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/verifier"
	"github.com/goodnatureofminers/hiero-importer/internal/metrics"
	"github.com/goodnatureofminers/hiero-importer/internal/transport"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := config.Config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "failed to parse flags:", err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger.Named("grpc"))

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("hiero importer failed", zap.Error(err))
	}
	logger.Info("hiero importer stopped")
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", cfg.Importer.Network))

	policy, err := cfg.Importer.Policy()
	if err != nil {
		return err
	}
	hashThreshold, err := cfg.Importer.HashThresholdVersion()
	if err != nil {
		return err
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Warn("close repository", zap.Error(closeErr))
		}
	}()

	cut, err := cutover.New(logger, cfg.Cutover.Config(), repo, metrics.NewCutover(), clock.System)
	if err != nil {
		return fmt.Errorf("init cutover: %w", err)
	}
	persist, err := persister.New(logger, repo)
	if err != nil {
		return fmt.Errorf("init persister: %w", err)
	}
	streamVerifier, err := verifier.New(logger, repo, transformer.New(logger), persist, cut, metrics.NewVerifier(), hashThreshold)
	if err != nil {
		return fmt.Errorf("init verifier: %w", err)
	}

	var archiver chain.Archiver
	if cfg.Archive.Enabled() {
		w, err := archive.New(logger, cfg.Archive.Config(), metrics.NewArchive())
		if err != nil {
			return fmt.Errorf("init archive: %w", err)
		}
		w.Start(ctx)
		defer w.Stop()
		archiver = w
	}

	reader := blockstream.NewReader(logger)

	store, err := newObjectStore(ctx, cfg.Downloader)
	if err != nil {
		return fmt.Errorf("init object store: %w", err)
	}
	fileSource, err := downloader.NewFileSource(logger, cfg.Downloader.Source(cfg.Importer), store, reader, streamVerifier, archiver, metrics.NewDownloader())
	if err != nil {
		return fmt.Errorf("init file source: %w", err)
	}

	nodes, err := newBlockNodes(logger, cfg.BlockNode)
	if err != nil {
		return err
	}
	subscriber, err := blocknode.NewSubscriber(logger, nodes, reader, streamVerifier, archiver, cfg.Importer.StartBlockNumber, cfg.Importer.EndBlockNumber)
	if err != nil {
		return fmt.Errorf("init block node subscriber: %w", err)
	}
	defer func() {
		if closeErr := subscriber.Close(); closeErr != nil {
			logger.Warn("close block node channels", zap.Error(closeErr))
		}
	}()

	importerMetrics := metrics.NewImporter()
	source, err := importer.NewCompositeBlockSource(logger, policy, fileSource, subscriber, streamVerifier, importerMetrics)
	if err != nil {
		return fmt.Errorf("init composite source: %w", err)
	}
	svc, err := importer.NewService(logger, source, cut, importer.StaticLeader(!cfg.Importer.Standby), importerMetrics, cfg.Importer.Enabled(), cfg.Importer.Frequency)
	if err != nil {
		return fmt.Errorf("init importer: %w", err)
	}

	status, err := transport.NewStatusHandler(logger, streamVerifier, source, cut, subscriber)
	if err != nil {
		return fmt.Errorf("init status handler: %w", err)
	}
	server, err := newAdminServer(cfg.AdminAddr, status)
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return svc.Run(gctx)
	})
	g.Go(func() error {
		logger.Info("starting admin server", zap.String("addr", cfg.AdminAddr))
		return serve(server)
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down admin server")
		return shutdown(server)
	})
	return g.Wait()
}

func newObjectStore(ctx context.Context, cfg config.Downloader) (downloader.ObjectStore, error) {
	switch {
	case cfg.LocalDir != "":
		return downloader.NewFSStore(cfg.LocalDir)
	case cfg.Bucket != "":
		return downloader.NewS3Store(ctx, cfg.S3())
	default:
		return downloader.NoStore{}, nil
	}
}

func newBlockNodes(logger *zap.Logger, cfg config.BlockNode) ([]*blocknode.Node, error) {
	configs, err := cfg.LoadNodes()
	if err != nil {
		return nil, err
	}

	grpcPrometheus.EnableClientHandlingTimeHistogram()
	opts := cfg.Options()
	nodeMetrics := metrics.NewBlockNode()
	nodes := make([]*blocknode.Node, 0, len(configs))
	for _, nc := range configs {
		client, err := blocknode.NewClient(logger, nc, opts.MaxStreamResponseSize)
		if err != nil {
			for _, n := range nodes {
				_ = n.Close()
			}
			return nil, fmt.Errorf("init block node %s: %w", nc.StreamingEndpoint(), err)
		}
		nodes = append(nodes, blocknode.NewNode(logger, nc, opts, client, nodeMetrics, clock.System))
	}
	return nodes, nil
}
