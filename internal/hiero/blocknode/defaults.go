package blocknode

import "time"

const (
	defaultIdleTimeout           = 30 * time.Second
	defaultMaxBlockItems         = 800_000
	defaultMaxStreamResponseSize = 36 * 1024 * 1024
	defaultMaxSubscribeAttempts  = 3
	defaultReadmitDelay          = time.Minute
	defaultStatusTimeout         = 2 * time.Second

	statusRetries      uint = 3
	statusRetryBackoff      = 100 * time.Millisecond
)
