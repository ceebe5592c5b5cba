package importer

import (
	"fmt"
	"strings"
)

// SourcePolicy decides which block source the composite source uses.
type SourcePolicy string

const (
	PolicyAuto      SourcePolicy = "AUTO"
	PolicyFile      SourcePolicy = "FILE"
	PolicyBlockNode SourcePolicy = "BLOCK_NODE"
)

// ParseSourcePolicy parses a policy name, case insensitively.
func ParseSourcePolicy(s string) (SourcePolicy, error) {
	switch p := SourcePolicy(strings.ToUpper(strings.TrimSpace(s))); p {
	case PolicyAuto, PolicyFile, PolicyBlockNode:
		return p, nil
	default:
		return "", fmt.Errorf("unknown source policy %q", s)
	}
}

// StaticLeader is a Leader for deployments that elect the importer outside the
// process.
type StaticLeader bool

func (l StaticLeader) IsLeader() bool { return bool(l) }
