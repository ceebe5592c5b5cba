package persister

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

type (
	Repository interface {
		InsertTransactions(ctx context.Context, rf *model.RecordFile) error
		InsertCryptoTransfers(ctx context.Context, rf *model.RecordFile) error
		InsertContractLogs(ctx context.Context, rf *model.RecordFile) error
		InsertRecordFile(ctx context.Context, rf *model.RecordFile) error
	}
)
