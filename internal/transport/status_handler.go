// Package transport exposes the importer's administrative HTTP endpoints.
package transport

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goodnatureofminers/hiero-importer/internal/hiero/blocknode"
	"github.com/goodnatureofminers/hiero-importer/internal/hiero/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const statusReadTimeout = 5 * time.Second

// BlockStatus describes the last accepted block.
type BlockStatus struct {
	Index          uint64 `json:"index"`
	Hash           string `json:"hash"`
	ConsensusStart int64  `json:"consensusStart"`
	ConsensusEnd   int64  `json:"consensusEnd"`
	Name           string `json:"name"`
	NodeID         string `json:"nodeId,omitempty"`
	SourceType     string `json:"sourceType"`
}

// StatusResponse is the body of GET /api/v1/importer/status.
type StatusResponse struct {
	LastBlock    *BlockStatus      `json:"lastBlock,omitempty"`
	Source       string            `json:"source"`
	SourceErrors map[string]uint32 `json:"sourceErrors"`
	StreamType   string            `json:"streamType"`
}

// StatusHandler serves importer state. Every read is safe to run concurrently
// with ingestion.
type StatusHandler struct {
	logger    *zap.Logger
	blocks    LastBlockReader
	sources   SourceSelector
	cutover   StreamTypeReader
	nodes     NodeLister
	marshaler gwruntime.Marshaler
}

func NewStatusHandler(logger *zap.Logger, blocks LastBlockReader, sources SourceSelector, cutover StreamTypeReader, nodes NodeLister) (*StatusHandler, error) {
	if blocks == nil {
		return nil, errors.New("last block reader is required")
	}
	if sources == nil {
		return nil, errors.New("source selector is required")
	}
	if cutover == nil {
		return nil, errors.New("cutover is required")
	}
	return &StatusHandler{
		logger:    logger.Named("status_handler"),
		blocks:    blocks,
		sources:   sources,
		cutover:   cutover,
		nodes:     nodes,
		marshaler: &gwruntime.JSONBuiltin{},
	}, nil
}

// Register mounts the handler routes on mux.
func (h *StatusHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		path    string
		handler gwruntime.HandlerFunc
	}{
		{path: "/api/v1/importer/status", handler: h.status},
		{path: "/api/v1/importer/blocknodes", handler: h.blockNodes},
		{path: "/healthz", handler: h.health},
	}
	for _, route := range routes {
		if err := mux.HandlePath(http.MethodGet, route.path, route.handler); err != nil {
			return err
		}
	}
	return nil
}

func (h *StatusHandler) status(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	ctx, cancel := context.WithTimeout(r.Context(), statusReadTimeout)
	defer cancel()

	last, err := h.blocks.LastBlockFile(ctx)
	if err != nil {
		h.logger.Warn("read last block file", zap.Error(err))
		h.write(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}

	resp := StatusResponse{
		Source:       string(h.sources.Current()),
		SourceErrors: make(map[string]uint32, 2),
		StreamType:   string(h.cutover.Current()),
	}
	for _, source := range []model.SourceType{model.SourceFile, model.SourceBlockNode} {
		resp.SourceErrors[string(source)] = h.sources.Errors(source)
	}
	if last != nil {
		resp.LastBlock = &BlockStatus{
			Index:          last.Index,
			Hash:           last.Hash,
			ConsensusStart: last.ConsensusStart,
			ConsensusEnd:   last.ConsensusEnd,
			Name:           last.Name,
			NodeID:         last.NodeID,
			SourceType:     string(last.SourceType),
		}
	}
	h.write(w, http.StatusOK, resp)
}

func (h *StatusHandler) blockNodes(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	nodes := []blocknode.NodeStatus{}
	if h.nodes != nil {
		nodes = append(nodes, h.nodes.Nodes()...)
	}
	h.write(w, http.StatusOK, nodes)
}

func (h *StatusHandler) health(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.write(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *StatusHandler) write(w http.ResponseWriter, code int, v any) {
	body, err := h.marshaler.Marshal(v)
	if err != nil {
		h.logger.Error("marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(code)
	if _, err = w.Write(body); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}
