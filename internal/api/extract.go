package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/shadowgen-hq/shadowgen/internal/emitter"
	"github.com/shadowgen-hq/shadowgen/internal/lexer"
	"github.com/shadowgen-hq/shadowgen/internal/scanner"
)

// ExtractRequest carries one source text plus per-request overrides of the
// server's configured extraction options.
type ExtractRequest struct {
	Source    string `json:"source"`
	Operation string `json:"operation,omitempty"`

	Class           string   `json:"class,omitempty"`
	MethodBlacklist []string `json:"method_blacklist,omitempty"`
	FieldBlacklist  []string `json:"field_blacklist,omitempty"`

	ShadowAnnotation string `json:"shadow_annotation,omitempty"`
	FinalAnnotation  string `json:"final_annotation,omitempty"`
}

// ExtractResponse is the emitted output, one entry per line.
type ExtractResponse struct {
	Operation    string   `json:"operation"`
	Declarations int      `json:"declarations"`
	Lines        []string `json:"lines"`
}

func (s *Server) listOperations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"operations": s.registry.List(),
	})
}

func (s *Server) extract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	opName := req.Operation
	if opName == "" {
		opName = s.cfg.Operation
	}
	if opName == "" {
		opName = "shadows"
	}

	op, err := s.registry.Get(opName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := s.requestOptions(req)

	tokens := lexer.Tokenize(req.Source)
	decls := scanner.Classify(lexer.GroupLines(tokens))

	lines, err := op.Emit(decls, opts)
	if err != nil {
		if errors.Is(err, emitter.ErrNoClass) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Error().Err(err).Str("operation", opName).Msg("emit failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ExtractResponse{
		Operation:    opName,
		Declarations: len(decls),
		Lines:        lines,
	})
}

// requestOptions merges per-request overrides over the server configuration.
func (s *Server) requestOptions(req ExtractRequest) emitter.Options {
	opts := emitter.Options{
		ClassFilter:      s.cfg.ClassFilter,
		MethodBlacklist:  s.cfg.MethodBlacklist,
		FieldBlacklist:   s.cfg.FieldBlacklist,
		ShadowAnnotation: s.cfg.ShadowAnnotation,
		FinalAnnotation:  s.cfg.FinalAnnotation,
	}

	if req.Class != "" {
		opts.ClassFilter = req.Class
	}
	if len(req.MethodBlacklist) > 0 {
		opts.MethodBlacklist = req.MethodBlacklist
	}
	if len(req.FieldBlacklist) > 0 {
		opts.FieldBlacklist = req.FieldBlacklist
	}
	if req.ShadowAnnotation != "" {
		opts.ShadowAnnotation = req.ShadowAnnotation
	}
	if req.FinalAnnotation != "" {
		opts.FinalAnnotation = req.FinalAnnotation
	}

	return opts
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
