package js

// SegmentKind identifies the literal a segment came from
type SegmentKind int

const (
	// StringLiteral is a quoted string, including JSX attribute values
	StringLiteral SegmentKind = iota
	// TemplateLiteral is the literal text of a template string
	TemplateLiteral
)

// Segment represents a literal text segment from a string or template string.
// Template strings are split at ${...} expression boundaries.
type Segment struct {
	// Content is the literal text of this segment
	Content string
	// StartLine is the 0-indexed line in the JS/TS source where this segment begins
	StartLine uint
	// StartCol is the 0-indexed column in the JS/TS source where this segment begins
	StartCol uint
	Kind     SegmentKind
}
