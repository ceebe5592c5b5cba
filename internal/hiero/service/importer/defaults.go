package importer

import "time"

const (
	// healthyErrorThreshold is the number of consecutive failures after which a
	// source counts as unhealthy.
	healthyErrorThreshold = 3

	defaultFrequency = 100 * time.Millisecond
)
