package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blocknode"
	"gopkg.in/yaml.v3"
)

type nodeList struct {
	Nodes []blocknode.NodeConfig `yaml:"nodes"`
}

// LoadBlockNodes decodes a YAML node list:
//
//	nodes:
//	  - host: block-node-0
//	    statusPort: 40840
//	    streamingPort: 40840
//	    priority: 0
func LoadBlockNodes(r io.Reader) ([]blocknode.NodeConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var list nodeList
	if err := dec.Decode(&list); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode block node list: %w", err)
	}

	seen := make(map[string]struct{}, len(list.Nodes))
	for i, node := range list.Nodes {
		if err := node.Validate(); err != nil {
			return nil, fmt.Errorf("block node %d: %w", i, err)
		}
		endpoint := node.StreamingEndpoint()
		if _, ok := seen[endpoint]; ok {
			return nil, fmt.Errorf("block node %s listed twice", endpoint)
		}
		seen[endpoint] = struct{}{}
	}
	return list.Nodes, nil
}
