package transport

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blocknode"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

type (
	LastBlockReader interface {
		LastBlockFile(ctx context.Context) (*model.BlockFile, error)
	}
	SourceSelector interface {
		Current() model.SourceType
		Errors(source model.SourceType) uint32
	}
	StreamTypeReader interface {
		Current() model.StreamType
	}
	NodeLister interface {
		Nodes() []blocknode.NodeStatus
	}
)
