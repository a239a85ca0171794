// Package dispatch is the engine's entry point: given a corpus and an
// optional explicit document-type identifier, it selects a schema extractor
// and produces the parse envelope.
package dispatch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jdutoit/policyparse/constants"
	"github.com/jdutoit/policyparse/internal/common"
	"github.com/jdutoit/policyparse/internal/corpus"
	"github.com/jdutoit/policyparse/internal/extractor"
	"github.com/jdutoit/policyparse/internal/record"
	"github.com/jdutoit/policyparse/internal/registry"
)

// Dispatcher resolves a corpus to a schema extractor. It holds only the
// read-only registry, so one Dispatcher serves concurrent parses.
type Dispatcher struct {
	reg     *registry.Registry
	generic *extractor.Generic
	logger  *slog.Logger
}

func New(reg *registry.Registry, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		reg:     reg,
		generic: extractor.NewGeneric(logger),
		logger:  logger,
	}
}

// Parse runs the engine. docTypeID selects an extractor explicitly; the auto
// sentinel (or an empty string) triggers auto-detection. An identifier that
// matches no registry entry is a client error and auto-detect is never
// attempted for it. Sparse results are normal: Parse only errors for an
// empty corpus or an unknown explicit identifier.
func (d *Dispatcher) Parse(c *corpus.Corpus, docTypeID string) (*record.Envelope, error) {
	if c == nil || c.PageCount() == 0 {
		return nil, common.NewAppError("EMPTY_CORPUS", "document produced no pages", common.ErrEmptyCorpus)
	}

	start := time.Now()

	if !constants.IsAutoDetect(docTypeID) {
		entry, ok := d.reg.Lookup(constants.DocumentTypeID(docTypeID))
		if !ok {
			return nil, common.NewAppError("UNKNOWN_DOCUMENT_TYPE",
				fmt.Sprintf("document type %q is not registered", docTypeID),
				common.ErrUnknownDocumentType)
		}
		env, err := d.run(entry, c)
		if err != nil {
			return nil, err
		}
		d.logger.Info("parse complete",
			"mode", "explicit",
			"document_type", entry.ID,
			"status", env.Status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return env, nil
	}

	for _, entry := range d.reg.InDetectionOrder() {
		if !entry.Extractor.Identify(c) {
			continue
		}
		env, err := d.run(entry, c)
		if err != nil {
			return nil, err
		}
		d.logger.Info("parse complete",
			"mode", "auto",
			"document_type", entry.ID,
			"status", env.Status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return env, nil
	}

	// Nothing matched: the generic fallback still returns a usable record.
	env, err := d.generic.Extract(c)
	if err != nil {
		return nil, err
	}
	env.DocumentTypeID = string(constants.AutoDetect)
	env.DocumentType = "Unknown Document Type"
	d.logger.Info("parse complete",
		"mode", "auto",
		"document_type", "unrecognized",
		"pages", c.PageCount(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return env, nil
}

func (d *Dispatcher) run(entry registry.Entry, c *corpus.Corpus) (*record.Envelope, error) {
	env, err := entry.Extractor.Extract(c)
	if err != nil {
		return nil, err
	}
	env.DocumentTypeID = string(entry.ID)
	env.DocumentType = entry.Name
	if env.Insurer == "" || env.Insurer == "Unknown" {
		env.Insurer = entry.Insurer
	}
	// Registered-but-unimplemented types surface as stubs even when the
	// generic extractor produced the placeholder.
	if entry.Status == constants.StatusStub && env.Status == constants.ParseStatusUnrecognized {
		env.Status = constants.ParseStatusStub
	}
	return env, nil
}
