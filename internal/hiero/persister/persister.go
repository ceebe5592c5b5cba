// Package persister writes verified record files to storage.
package persister

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/goodnatureofminers/hiero-importer/pkg/workerpool"
	"go.uber.org/zap"
)

// Persister stores the rows of a verified block. The record_file row goes last:
// the latest stored record file is where the importer resumes from, so it must
// never point at a block whose rows are missing.
type Persister struct {
	logger *zap.Logger
	repo   Repository
}

func New(logger *zap.Logger, repo Repository) (*Persister, error) {
	if logger == nil {
		return nil, errors.New("logger is required")
	}
	if repo == nil {
		return nil, errors.New("repository is required")
	}
	return &Persister{logger: logger.Named("persister"), repo: repo}, nil
}

// OnVerified persists rf and returns once the record file row is written.
func (p *Persister) OnVerified(ctx context.Context, rf *model.RecordFile) error {
	err := workerpool.Run(ctx,
		func(ctx context.Context) error { return p.repo.InsertTransactions(ctx, rf) },
		func(ctx context.Context) error { return p.repo.InsertCryptoTransfers(ctx, rf) },
		func(ctx context.Context) error { return p.repo.InsertContractLogs(ctx, rf) },
	)
	if err != nil {
		return fmt.Errorf("persist block %d rows: %w", rf.Index, err)
	}

	if err = p.repo.InsertRecordFile(ctx, rf); err != nil {
		return fmt.Errorf("persist block %d record file: %w", rf.Index, err)
	}

	p.logger.Debug("block persisted",
		zap.Uint64("block", rf.Index),
		zap.Int("transactions", len(rf.Items)),
		zap.Duration("load", rf.LoadEnd.Sub(rf.LoadStart)))
	return nil
}
