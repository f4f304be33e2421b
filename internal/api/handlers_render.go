package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/dgallion1/calloutmd/internal/callout"
	"github.com/dgallion1/calloutmd/internal/pipeline"
)

type batchRequest struct {
	Documents []pipeline.Source `json:"documents"`
}

type batchResponse struct {
	Documents []pipeline.ResultRecord `json:"documents"`
	Rendered  int                     `json:"rendered"`
	Failed    int                     `json:"failed"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var src pipeline.Source
	if !s.decode(w, r, s.cfg.MaxUploadBytes, &src) {
		return
	}
	if err := validatePath(src.Path); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := s.orchestrator.Render(r.Context(), src)
	if res.Err != nil {
		renderError(w, res.Err)
		return
	}
	writeJSON(w, http.StatusOK, res.Record())
}

func (s *Server) handleRenderBatch(w http.ResponseWriter, r *http.Request) {
	sources, ok := s.decodeBatch(w, r)
	if !ok {
		return
	}

	results := s.orchestrator.RenderAll(r.Context(), sources)
	resp := batchResponse{Documents: make([]pipeline.ResultRecord, len(results))}
	for i, res := range results {
		resp.Documents[i] = res.Record()
		if res.Err != nil {
			resp.Failed++
		} else {
			resp.Rendered++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// decodeBatch reads and checks a batch body, writing the error response
// itself when the batch is rejected.
func (s *Server) decodeBatch(w http.ResponseWriter, r *http.Request) ([]pipeline.Source, bool) {
	var req batchRequest
	limit := s.cfg.MaxUploadBytes * int64(max(s.cfg.MaxBatchDocuments, 1))
	if !s.decode(w, r, limit, &req) {
		return nil, false
	}
	if len(req.Documents) == 0 {
		jsonError(w, "at least one document is required", http.StatusBadRequest)
		return nil, false
	}
	if len(req.Documents) > s.cfg.MaxBatchDocuments {
		jsonError(w, fmt.Sprintf("batch exceeds max documents (%d)", s.cfg.MaxBatchDocuments), http.StatusRequestEntityTooLarge)
		return nil, false
	}
	for i, src := range req.Documents {
		if err := validatePath(src.Path); err != nil {
			jsonError(w, fmt.Sprintf("documents[%d]: %v", i, err), http.StatusBadRequest)
			return nil, false
		}
		if int64(len(src.Markdown)) > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("documents[%d]: exceeds max size (%d bytes)", i, s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return nil, false
		}
	}
	return req.Documents, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, limit int64, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, limit+64*1024) // extra for JSON overhead
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			jsonError(w, fmt.Sprintf("request exceeds max size (%d bytes)", limit), http.StatusRequestEntityTooLarge)
			return false
		}
		jsonError(w, "invalid JSON body: "+err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// renderError maps a failed render to a response. Invalid icons are the
// author's mistake, so they get a 422 with a fix-it hint.
func renderError(w http.ResponseWriter, err error) {
	var iconErr *callout.InvalidIconError
	if errors.As(err, &iconErr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error": err.Error(),
			"icon":  iconErr.Name,
			"hint":  iconErr.Hint(),
			"valid": iconErr.Valid,
		})
		return
	}
	jsonError(w, err.Error(), http.StatusInternalServerError)
}

// validatePath rejects paths that climb out of the docs tree. Empty paths
// are allowed: such documents are rendered without callouts.
func validatePath(p string) error {
	if p == "" {
		return nil
	}
	if strings.Contains(p, "\\") {
		return fmt.Errorf("path %q must use forward slashes", p)
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("path %q escapes the docs directory", p)
	}
	return nil
}
