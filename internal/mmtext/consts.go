package mmtext

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// SectionOpen marks the start of a section header
	SectionOpen = "["

	// SectionClose marks the end of a section header
	SectionClose = "]"

	// Assign separates an entry key from its value
	Assign = "="

	// AltAssign is the alternative key/value separator accepted on input
	AltAssign = ":"

	// EmitAssign is the separator written between keys and values
	EmitAssign = " = "

	// ============================================================================
	// Comments and Line Endings
	// ============================================================================

	// CommentHash marks a comment line
	CommentHash = "#"

	// CommentSemicolon is the alternative comment marker
	CommentSemicolon = ";"

	// CR is the carriage return left behind by CRLF files
	CR = "\r"

	// LF terminates every emitted line
	LF = "\n"
)
