// Package config holds the importer's command line configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/coreos/go-semver/semver"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/archive"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blocknode"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/cutover"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/downloader"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/service/importer"
	"github.com/goodnatureofminers/hiero-importer/pkg/batcher"
)

// Config is the full importer configuration.
type Config struct {
	LogJSON       bool   `long:"log-json" env:"LOG_JSON" description:"log in JSON"`
	AdminAddr     string `long:"admin-addr" env:"ADMIN_ADDR" description:"admin and metrics http addr" default:":8080"`
	ClickhouseDSN string `long:"clickhouse-dsn" env:"CLICKHOUSE_DSN" description:"clickhouse dsn" required:"true"`

	Importer   Importer   `group:"Importer"`
	BlockNode  BlockNode  `group:"Block node"`
	Downloader Downloader `group:"Downloader"`
	Cutover    Cutover    `group:"Cutover"`
	Archive    Archive    `group:"Archive"`
}

type Importer struct {
	Network          string        `long:"network" env:"NETWORK" description:"ledger network" default:"mainnet"`
	Disabled         bool          `long:"disabled" env:"IMPORTER_DISABLED" description:"do not import blocks"`
	Standby          bool          `long:"standby" env:"IMPORTER_STANDBY" description:"run as a non leader replica"`
	SourcePolicy     string        `long:"source-policy" env:"SOURCE_POLICY" description:"block source" choice:"AUTO" choice:"FILE" choice:"BLOCK_NODE" default:"AUTO"`
	Frequency        time.Duration `long:"frequency" env:"FREQUENCY" description:"poll interval" default:"100ms"`
	StartBlockNumber int64         `long:"start-block-number" env:"START_BLOCK_NUMBER" description:"first block to import when nothing is imported yet, -1 for unset" default:"-1"`
	EndBlockNumber   int64         `long:"end-block-number" env:"END_BLOCK_NUMBER" description:"last block to import, -1 for unset" default:"-1"`
	HashThreshold    string        `long:"hash-threshold-version" env:"HASH_THRESHOLD_VERSION" description:"hapi version from which block hashes are not checked"`
}

type BlockNode struct {
	NodesFile             string        `long:"blocknode-nodes-file" env:"BLOCKNODE_NODES_FILE" description:"yaml file listing block nodes"`
	IdleTimeout           time.Duration `long:"blocknode-idle-timeout" env:"BLOCKNODE_IDLE_TIMEOUT" description:"max wait for the next block item" default:"30s"`
	MaxBlockItems         int           `long:"blocknode-max-block-items" env:"BLOCKNODE_MAX_BLOCK_ITEMS" description:"max items of one block" default:"800000"`
	MaxStreamResponseSize int           `long:"blocknode-max-stream-response-size" env:"BLOCKNODE_MAX_STREAM_RESPONSE_SIZE" description:"max bytes of one stream response" default:"37748736"`
	MaxSubscribeAttempts  int           `long:"blocknode-max-subscribe-attempts" env:"BLOCKNODE_MAX_SUBSCRIBE_ATTEMPTS" description:"errors before a node is quarantined" default:"3"`
	ReadmitDelay          time.Duration `long:"blocknode-readmit-delay" env:"BLOCKNODE_READMIT_DELAY" description:"quarantine duration" default:"1m"`
	StatusTimeout         time.Duration `long:"blocknode-status-timeout" env:"BLOCKNODE_STATUS_TIMEOUT" description:"server status call timeout" default:"2s"`
}

type Downloader struct {
	Bucket         string        `long:"downloader-bucket" env:"DOWNLOADER_BUCKET" description:"block file bucket"`
	Region         string        `long:"downloader-region" env:"DOWNLOADER_REGION" description:"bucket region" default:"us-east-1"`
	Endpoint       string        `long:"downloader-endpoint" env:"DOWNLOADER_ENDPOINT" description:"s3 compatible endpoint override"`
	ForcePathStyle bool          `long:"downloader-force-path-style" env:"DOWNLOADER_FORCE_PATH_STYLE" description:"use path style bucket addressing"`
	RequesterPays  bool          `long:"downloader-requester-pays" env:"DOWNLOADER_REQUESTER_PAYS" description:"bucket is requester pays"`
	LocalDir       string        `long:"downloader-local-dir" env:"DOWNLOADER_LOCAL_DIR" description:"read block files from a directory instead of a bucket"`
	PathPrefix     string        `long:"downloader-path-prefix" env:"DOWNLOADER_PATH_PREFIX" description:"key prefix of block files" default:"block"`
	Shard          uint64        `long:"downloader-shard" env:"DOWNLOADER_SHARD" description:"shard of the consensus nodes" default:"0"`
	NodeIDs        []string      `long:"downloader-node-id" env:"DOWNLOADER_NODE_IDS" env-delim:"," description:"consensus node ids to download from"`
	Timeout        time.Duration `long:"downloader-timeout" env:"DOWNLOADER_TIMEOUT" description:"time budget for one block" default:"30s"`
}

type Cutover struct {
	Enabled       bool          `long:"cutover" env:"CUTOVER_ENABLED" description:"network migrates from record files to block streams"`
	DisableRecord bool          `long:"cutover-disable-record-stream" env:"CUTOVER_DISABLE_RECORD_STREAM" description:"never ingest record files"`
	DisableBlock  bool          `long:"cutover-disable-block-stream" env:"CUTOVER_DISABLE_BLOCK_STREAM" description:"never ingest block streams"`
	Threshold     time.Duration `long:"cutover-threshold" env:"CUTOVER_THRESHOLD" description:"time without a verified record before switching formats" default:"30s"`
}

type Archive struct {
	Dir           string        `long:"archive-dir" env:"ARCHIVE_DIR" description:"write accepted block files under this directory"`
	Compress      bool          `long:"archive-compress" env:"ARCHIVE_COMPRESS" description:"gzip archived block files"`
	FlushSize     int           `long:"archive-flush-size" env:"ARCHIVE_FLUSH_SIZE" description:"files per archive batch" default:"16"`
	FlushInterval time.Duration `long:"archive-flush-interval" env:"ARCHIVE_FLUSH_INTERVAL" description:"archive batch interval" default:"1s"`
	FlushRPS      int           `long:"archive-flush-rps" env:"ARCHIVE_FLUSH_RPS" description:"max archive batches per second" default:"50"`
}

// Validate checks cross field constraints once at startup.
func (c *Config) Validate() error {
	policy, err := c.Importer.Policy()
	if err != nil {
		return err
	}
	if c.Importer.Frequency <= 0 {
		return errors.New("frequency must be positive")
	}
	if start, end := c.Importer.StartBlockNumber, c.Importer.EndBlockNumber; start >= 0 && end >= 0 && end < start {
		return fmt.Errorf("end block number %d is before start block number %d", end, start)
	}
	if _, err = c.Importer.HashThresholdVersion(); err != nil {
		return err
	}
	if policy != importer.PolicyBlockNode && c.Downloader.Bucket == "" && c.Downloader.LocalDir == "" {
		return fmt.Errorf("source policy %s needs a downloader bucket or local dir", policy)
	}
	if policy == importer.PolicyBlockNode && c.BlockNode.NodesFile == "" {
		return errors.New("source policy BLOCK_NODE needs a block node list")
	}
	if c.Cutover.Enabled && c.Cutover.Threshold <= 0 {
		return errors.New("cutover threshold must be positive")
	}
	return nil
}

// Enabled reports whether blocks should be imported at all.
func (i Importer) Enabled() bool { return !i.Disabled }

func (i Importer) Policy() (importer.SourcePolicy, error) {
	return importer.ParseSourcePolicy(i.SourcePolicy)
}

// HashThresholdVersion returns the parsed threshold, zero when unset.
func (i Importer) HashThresholdVersion() (semver.Version, error) {
	if i.HashThreshold == "" {
		return semver.Version{}, nil
	}
	v, err := semver.NewVersion(i.HashThreshold)
	if err != nil {
		return semver.Version{}, fmt.Errorf("hash threshold version: %w", err)
	}
	return *v, nil
}

func (b BlockNode) Options() blocknode.Options {
	return blocknode.Options{
		IdleTimeout:           b.IdleTimeout,
		MaxBlockItems:         b.MaxBlockItems,
		MaxStreamResponseSize: b.MaxStreamResponseSize,
		MaxSubscribeAttempts:  b.MaxSubscribeAttempts,
		ReadmitDelay:          b.ReadmitDelay,
		StatusTimeout:         b.StatusTimeout,
	}
}

// LoadNodes reads the node list file. No file means no block nodes.
func (b BlockNode) LoadNodes() ([]blocknode.NodeConfig, error) {
	if b.NodesFile == "" {
		return nil, nil
	}
	f, err := os.Open(b.NodesFile)
	if err != nil {
		return nil, fmt.Errorf("open block node list: %w", err)
	}
	defer f.Close()
	return LoadBlockNodes(f)
}

func (d Downloader) S3() downloader.S3Config {
	return downloader.S3Config{
		Bucket:         d.Bucket,
		Region:         d.Region,
		Endpoint:       d.Endpoint,
		ForcePathStyle: d.ForcePathStyle,
		RequesterPays:  d.RequesterPays,
	}
}

func (d Downloader) Source(i Importer) downloader.Config {
	return downloader.Config{
		NodeIDs:          d.NodeIDs,
		Shard:            d.Shard,
		PathPrefix:       d.PathPrefix,
		Timeout:          d.Timeout,
		StartBlockNumber: i.StartBlockNumber,
		EndBlockNumber:   i.EndBlockNumber,
	}
}

func (c Cutover) Config() cutover.Config {
	return cutover.Config{
		Enabled:       c.Enabled,
		RecordEnabled: !c.DisableRecord,
		BlockEnabled:  !c.DisableBlock,
		Threshold:     c.Threshold,
	}
}

// Enabled reports whether accepted blocks are archived.
func (a Archive) Enabled() bool { return a.Dir != "" }

func (a Archive) Config() archive.Config {
	return archive.Config{
		Dir:      a.Dir,
		Compress: a.Compress,
		Batch: batcher.Config{
			FlushSize:     a.FlushSize,
			FlushInterval: a.FlushInterval,
			RPS:           a.FlushRPS,
		},
	}
}
