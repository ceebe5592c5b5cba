package clickhouse

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	"github.com/goodnatureofminers/hiero-importer/pkg/safe"
)

const insertRecordFileQuery = `
INSERT INTO record_file (
	` + recordFileColumns + `
) VALUES`

// InsertRecordFile stores the record file row. It is written after the rows that
// reference it, so a present row marks the block as fully imported.
func (r *Repository) InsertRecordFile(ctx context.Context, rf *model.RecordFile) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_record_file", err, start)
	}()

	if rf == nil {
		err = errors.New("record file is required")
		return err
	}

	count, err := safe.Uint32(rf.Count)
	if err != nil {
		return fmt.Errorf("record file count: %w", err)
	}
	size, err := safe.Uint64(rf.Size)
	if err != nil {
		return fmt.Errorf("record file size: %w", err)
	}
	version, err := safe.Uint8(rf.Version)
	if err != nil {
		return fmt.Errorf("record file version: %w", err)
	}

	err = r.insert(ctx, "record_file", insertRecordFileQuery, [][]any{{
		rf.Index,
		rf.Hash,
		rf.PreviousHash,
		rf.ConsensusStart,
		rf.ConsensusEnd,
		count,
		size,
		rf.HapiVersion.String(),
		rf.SoftwareVersion.String(),
		version,
		rf.NodeID,
		string(rf.SourceType),
		rf.Name,
		rf.LoadStart,
		rf.LoadEnd,
		rf.RoundStart,
		rf.RoundEnd,
		rf.GasUsed,
		hex.EncodeToString(rf.LogsBloom),
	}})
	return err
}
