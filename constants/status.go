package constants

// DocTypeStatus is the implementation status of a registered document type.
type DocTypeStatus string

// Stable values (callers match on these exact strings).
const (
	StatusActive DocTypeStatus = "active" // fully implemented extractor
	StatusStub   DocTypeStatus = "stub"   // identify works, extract returns a placeholder
)

// ParseStatus is the outcome marker on a parse envelope.
type ParseStatus string

const (
	ParseStatusParsed       ParseStatus = "parsed"       // typed record produced
	ParseStatusStub         ParseStatus = "stub"         // extractor not implemented yet
	ParseStatusUnrecognized ParseStatus = "unrecognized" // generic fallback ran
)
