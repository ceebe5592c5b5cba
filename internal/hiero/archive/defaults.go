package archive

import "time"

const (
	defaultFlushSize     = 16
	defaultFlushInterval = time.Second
	defaultFlushRPS      = 50

	dirPerm  = 0o755
	filePerm = 0o644
)
