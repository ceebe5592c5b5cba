package blocknode

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blockstream"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Client interface {
		ServerStatus(ctx context.Context) (*blockstream.ServerStatusResponse, error)
		Subscribe(ctx context.Context, req *blockstream.SubscribeStreamRequest) (Stream, error)
		Close() error
	}
	Stream interface {
		Recv() (*blockstream.SubscribeStreamResponse, error)
	}
	StreamVerifier interface {
		Verify(ctx context.Context, file *model.BlockFile) error
		LastBlockFile(ctx context.Context) (*model.BlockFile, error)
	}
	BlockReader interface {
		Read(stream *model.BlockStream) (*model.BlockFile, error)
	}
	Archiver interface {
		Archive(ctx context.Context, stream *model.BlockStream, file *model.BlockFile) error
	}
	Metrics interface {
		ObserveStream(node string, err error, blocks int, started time.Time)
		SetQuarantined(node string, quarantined bool)
	}
)
