package downloader

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ObjectStore interface {
		GetObject(ctx context.Context, key string) (*Object, error)
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
		ObserveDownload(node string, err error, started time.Time)
		ObserveCloudStorageLatency(latency time.Duration)
		ObserveVerificationLatency(latency time.Duration)
	}
)
