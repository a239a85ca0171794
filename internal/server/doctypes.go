package server

import (
	"net/http"

	"github.com/jdutoit/policyparse/constants"
)

type docTypeEntry struct {
	ID          constants.DocumentTypeID `json:"id"`
	Name        string                   `json:"name"`
	Insurer     string                   `json:"insurer"`
	Description string                   `json:"description"`
	Status      constants.DocTypeStatus  `json:"status"`
}

func (s *Server) handleDocTypes(w http.ResponseWriter, r *http.Request) {
	entries := s.reg.Entries()
	out := make([]docTypeEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, docTypeEntry{
			ID:          e.ID,
			Name:        e.Name,
			Insurer:     e.Insurer,
			Description: e.Description,
			Status:      e.Status,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"document_types": out})
}
