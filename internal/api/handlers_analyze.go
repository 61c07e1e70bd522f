package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dgallion1/docstruct/internal/docline"
)

// analyzeRequest carries either raw text or pre-split lines. When both
// are present, lines win.
type analyzeRequest struct {
	Text  string   `json:"text"`
	Lines []string `json:"lines"`
}

// handleAnalyze structures plain text synchronously, for callers that
// already have text and don't need the upload pipeline.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Text == "" && len(req.Lines) == 0 {
		jsonError(w, "text or lines is required", http.StatusBadRequest)
		return
	}

	lines := docline.FromText(req.Text)
	if len(req.Lines) > 0 {
		lines = make([]docline.Line, len(req.Lines))
		for i, t := range req.Lines {
			lines[i] = docline.Line{Text: t}
		}
	}

	start := time.Now()
	res := s.orchestrator.Processor().Process(lines)
	s.orchestrator.EngineStats().Record(time.Since(start).Milliseconds())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
