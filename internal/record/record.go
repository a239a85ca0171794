// Package record declares the nested output shapes, one per document type.
// Every leaf is nullable: a field the source text never yielded marshals as
// null (or is omitted), and array fields marshal as empty arrays, never null.
// Absence is data, not an error.
package record

import "github.com/jdutoit/policyparse/constants"

// Envelope is the top-level result of one parse. Fields carries the
// document-type-specific record (Discovery, Hollard, Generic, Stub).
type Envelope struct {
	DocumentTypeID string                `json:"documentTypeId"`
	DocumentType   string                `json:"documentType"`
	Insurer        string                `json:"insurer"`
	Status         constants.ParseStatus `json:"status"`
	Fields         any                   `json:"fields"`
}

// Contact groups the phone/email sub-fields shared by several issuers.
type Contact struct {
	Email     *string `json:"email"`
	Cellphone *string `json:"cellphone"`
	HomePhone *string `json:"homePhone"`
	WorkPhone *string `json:"workPhone"`
}

// Excess is the excess breakdown attached to a covered item.
type Excess struct {
	Basic     *float64 `json:"basic"`
	Voluntary *float64 `json:"voluntary"`
	Total     *float64 `json:"total"`
}

// Generic is the fallback record when no extractor recognizes the document:
// a raw preview of the first pages so a new document type can be analyzed.
type Generic struct {
	PageCount int               `json:"pageCount"`
	Preview   map[string]string `json:"preview"`
	Message   string            `json:"message"`
}

// Stub is the placeholder record for registered-but-unimplemented document
// types. Callers must treat it as a distinct, non-error outcome.
type Stub struct {
	Message string            `json:"message"`
	Preview map[string]string `json:"preview"`
}
