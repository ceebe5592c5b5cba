package verifier

import (
	"context"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		LatestBlockFile(ctx context.Context) (*model.BlockFile, error)
	}
	Transformer interface {
		Transform(file *model.BlockFile) *model.RecordFile
	}
	Listener interface {
		OnVerified(ctx context.Context, records *model.RecordFile) error
	}
	CutoverListener interface {
		Verified(records *model.RecordFile)
	}
	Metrics interface {
		ObserveVerify(err error, source model.SourceType, started time.Time)
		ObserveStreamClose(latency time.Duration)
	}
)
