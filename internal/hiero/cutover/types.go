package cutover

import (
	"context"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		EarliestRecordFile(ctx context.Context) (*model.RecordFile, error)
		LatestRecordFile(ctx context.Context) (*model.RecordFile, error)
	}
	Metrics interface {
		SetActive(streamType model.StreamType)
		ObserveSwitch(from, to model.StreamType)
	}
)
