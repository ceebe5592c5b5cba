package blocknode

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"
)

// NodeConfig is one block node entry of the node list file.
type NodeConfig struct {
	Host          string `yaml:"host"`
	StatusPort    int    `yaml:"statusPort"`
	StreamingPort int    `yaml:"streamingPort"`
	Priority      int    `yaml:"priority"`
}

func (c NodeConfig) StatusEndpoint() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.StatusPort))
}

func (c NodeConfig) StreamingEndpoint() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.StreamingPort))
}

// Validate checks that the entry can be dialed.
func (c NodeConfig) Validate() error {
	if c.Host == "" {
		return errors.New("block node host is required")
	}
	if c.StatusPort <= 0 || c.StatusPort > 65535 {
		return fmt.Errorf("block node %s: invalid status port %d", c.Host, c.StatusPort)
	}
	if c.StreamingPort <= 0 || c.StreamingPort > 65535 {
		return fmt.Errorf("block node %s: invalid streaming port %d", c.Host, c.StreamingPort)
	}
	return nil
}

// Options bound a node's subscriptions and health tracking.
type Options struct {
	IdleTimeout           time.Duration
	MaxBlockItems         int
	MaxStreamResponseSize int
	MaxSubscribeAttempts  int
	ReadmitDelay          time.Duration
	StatusTimeout         time.Duration
}

func (o Options) withDefaults() Options {
	if o.IdleTimeout <= 0 {
		o.IdleTimeout = defaultIdleTimeout
	}
	if o.MaxBlockItems <= 0 {
		o.MaxBlockItems = defaultMaxBlockItems
	}
	if o.MaxStreamResponseSize <= 0 {
		o.MaxStreamResponseSize = defaultMaxStreamResponseSize
	}
	if o.MaxSubscribeAttempts <= 0 {
		o.MaxSubscribeAttempts = defaultMaxSubscribeAttempts
	}
	if o.ReadmitDelay <= 0 {
		o.ReadmitDelay = defaultReadmitDelay
	}
	if o.StatusTimeout <= 0 {
		o.StatusTimeout = defaultStatusTimeout
	}
	return o
}
