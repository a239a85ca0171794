package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/jdutoit/policyparse/internal/common"
	"github.com/jdutoit/policyparse/internal/corpus"
)

// corpusPayload is the JSON body accepted as an alternative to a PDF upload:
// page text already extracted by some upstream collaborator, optionally with
// per-page tables (rows of cells) from its table-detection pass.
type corpusPayload struct {
	Pages  map[string]string         `json:"pages"`
	Tables map[string][]corpus.Table `json:"tables,omitempty"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	reqID := common.RequestIDFromContext(r.Context())
	docType := r.URL.Query().Get("document_type")

	var (
		c   *corpus.Corpus
		err error
	)
	ct := r.Header.Get("Content-Type")
	switch {
	case strings.HasPrefix(ct, "application/json"):
		c, err = s.corpusFromJSON(r)
	case strings.HasPrefix(ct, "multipart/form-data"):
		c, err = s.corpusFromUpload(r)
	default:
		s.writeError(w, reqID, http.StatusUnsupportedMediaType, "expected multipart/form-data or application/json")
		return
	}
	if err != nil {
		s.logger.Warn("corpus construction failed", "request_id", reqID, "error", err)
		s.writeError(w, reqID, errorStatus(err), err.Error())
		return
	}

	env, err := s.dispatcher.Parse(c, docType)
	if err != nil {
		s.logger.Warn("parse failed", "request_id", reqID, "document_type", docType, "error", err)
		s.writeError(w, reqID, errorStatus(err), err.Error())
		return
	}

	s.logger.Info("parse request served",
		"request_id", reqID,
		"document_type", env.DocumentTypeID,
		"status", env.Status,
		"pages", c.PageCount(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	writeJSON(w, http.StatusOK, env)
}

func (s *Server) corpusFromJSON(r *http.Request) (*corpus.Corpus, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxUploadBytes))
	if err != nil {
		return nil, common.NewAppError("READ_BODY", "reading request body", err)
	}
	if err := validateCorpusPayload(body); err != nil {
		return nil, common.NewAppError("INVALID_CORPUS", err.Error(), common.ErrInvalidInput)
	}
	var payload corpusPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, common.NewAppError("INVALID_CORPUS", "decoding corpus payload", common.ErrInvalidInput)
	}

	pages := make(map[int]string, len(payload.Pages))
	for k, v := range payload.Pages {
		n, err := strconv.Atoi(k)
		if err != nil || n < 1 {
			return nil, common.NewAppError("INVALID_CORPUS", "page keys must be positive integers", common.ErrInvalidInput)
		}
		pages[n] = v
	}
	c := corpus.FromPages(pages)
	for k, tables := range payload.Tables {
		n, err := strconv.Atoi(k)
		if err != nil || n < 1 {
			return nil, common.NewAppError("INVALID_CORPUS", "table keys must be positive integers", common.ErrInvalidInput)
		}
		c.WithTables(n, tables)
	}
	return c, nil
}

func (s *Server) corpusFromUpload(r *http.Request) (*corpus.Corpus, error) {
	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		return nil, common.NewAppError("INVALID_UPLOAD", "parsing multipart form", common.ErrInvalidInput)
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		return nil, common.NewAppError("INVALID_UPLOAD", `multipart field "file" is required`, common.ErrInvalidInput)
	}
	defer file.Close()

	// The provider shells out to pdftotext, so the upload lands in a temp
	// file that is removed as soon as the corpus is built.
	tmp, err := os.CreateTemp("", "policyparse-*"+filepath.Ext(hdr.Filename))
	if err != nil {
		return nil, common.NewAppError("UPLOAD_SPOOL", "spooling upload", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		return nil, common.NewAppError("UPLOAD_SPOOL", "spooling upload", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, common.NewAppError("UPLOAD_SPOOL", "spooling upload", err)
	}

	return s.provider.FromPDF(r.Context(), tmp.Name())
}

func (s *Server) writeError(w http.ResponseWriter, reqID string, status int, msg string) {
	writeJSON(w, status, map[string]string{
		"error":      msg,
		"request_id": reqID,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
