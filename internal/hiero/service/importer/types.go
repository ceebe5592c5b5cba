package importer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		Get(ctx context.Context) error
	}
	StreamingSource interface {
		Get(ctx context.Context) error
		HasNodes() bool
	}
	LastBlockFinder interface {
		LastBlockFile(ctx context.Context) (*model.BlockFile, error)
	}
	Cutover interface {
		IsActive(ctx context.Context, streamType model.StreamType) bool
	}
	Leader interface {
		IsLeader() bool
	}
	Metrics interface {
		ObserveGet(source model.SourceType, err error, started time.Time)
		SetSourceErrors(source model.SourceType, errors uint32)
		ObserveTick(err error, started time.Time)
	}
)
