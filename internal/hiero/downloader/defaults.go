package downloader

import "time"

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxBlockSize = 64 << 20
)
