package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/coreos/go-semver/semver"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
)

const recordFileColumns = `block_index,
	hash,
	prev_hash,
	consensus_start,
	consensus_end,
	count,
	size,
	hapi_version,
	software_version,
	version,
	node_id,
	source_type,
	name,
	load_start,
	load_end,
	round_start,
	round_end,
	gas_used,
	logs_bloom`

const latestRecordFileQuery = `
SELECT ` + recordFileColumns + `
FROM record_file FINAL
ORDER BY block_index DESC
LIMIT 1`

const earliestRecordFileQuery = `
SELECT ` + recordFileColumns + `
FROM record_file FINAL
ORDER BY block_index ASC
LIMIT 1`

// LatestRecordFile returns the highest stored record file, or nil when the table is empty.
func (r *Repository) LatestRecordFile(ctx context.Context) (*model.RecordFile, error) {
	return r.queryRecordFile(ctx, "latest_record_file", latestRecordFileQuery)
}

// EarliestRecordFile returns the lowest stored record file, or nil when the table is empty.
func (r *Repository) EarliestRecordFile(ctx context.Context) (*model.RecordFile, error) {
	return r.queryRecordFile(ctx, "earliest_record_file", earliestRecordFileQuery)
}

// LatestBlockFile returns the sequencing state of the last imported block.
func (r *Repository) LatestBlockFile(ctx context.Context) (*model.BlockFile, error) {
	rf, err := r.queryRecordFile(ctx, "latest_block_file", latestRecordFileQuery)
	if err != nil || rf == nil {
		return nil, err
	}

	return &model.BlockFile{
		Index:           rf.Index,
		Hash:            rf.Hash,
		PreviousHash:    rf.PreviousHash,
		ConsensusStart:  rf.ConsensusStart,
		ConsensusEnd:    rf.ConsensusEnd,
		Count:           rf.Count,
		Size:            rf.Size,
		HapiVersion:     rf.HapiVersion,
		SoftwareVersion: rf.SoftwareVersion,
		Version:         rf.Version,
		NodeID:          rf.NodeID,
		SourceType:      rf.SourceType,
		Name:            rf.Name,
		LoadStart:       rf.LoadStart,
		RoundStart:      rf.RoundStart,
		RoundEnd:        rf.RoundEnd,
	}, nil
}

func (r *Repository) queryRecordFile(ctx context.Context, operation, query string) (rf *model.RecordFile, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe(operation, err, start)
	}()

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query record file: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate record file: %w", err)
		}
		return nil, nil
	}

	if rf, err = scanRecordFile(rows); err != nil {
		return nil, err
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate record file: %w", err)
	}
	return rf, nil
}

func scanRecordFile(rows Rows) (*model.RecordFile, error) {
	var (
		rf       model.RecordFile
		count    uint32
		size     uint64
		hapi     string
		software string
		version  uint8
		source   string
		bloom    string
	)
	if err := rows.Scan(
		&rf.Index,
		&rf.Hash,
		&rf.PreviousHash,
		&rf.ConsensusStart,
		&rf.ConsensusEnd,
		&count,
		&size,
		&hapi,
		&software,
		&version,
		&rf.NodeID,
		&source,
		&rf.Name,
		&rf.LoadStart,
		&rf.LoadEnd,
		&rf.RoundStart,
		&rf.RoundEnd,
		&rf.GasUsed,
		&bloom,
	); err != nil {
		return nil, fmt.Errorf("scan record file: %w", err)
	}

	var err error
	if rf.HapiVersion, err = parseVersion(hapi); err != nil {
		return nil, fmt.Errorf("parse hapi version: %w", err)
	}
	if rf.SoftwareVersion, err = parseVersion(software); err != nil {
		return nil, fmt.Errorf("parse software version: %w", err)
	}
	if rf.LogsBloom, err = hex.DecodeString(bloom); err != nil {
		return nil, fmt.Errorf("decode logs bloom: %w", err)
	}
	rf.Count = int(count)
	rf.Size = int(size)
	rf.Version = int(version)
	rf.SourceType = model.SourceType(source)
	return &rf, nil
}

func parseVersion(s string) (semver.Version, error) {
	if s == "" {
		return semver.Version{}, nil
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return semver.Version{}, err
	}
	return *v, nil
}
