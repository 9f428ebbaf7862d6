package html5

import "fmt"

// Parse error codes, stable kebab-case strings compared verbatim by
// conformance fixtures. Cross-checked against the WHATWG parse-errors
// catalog; tree-construction-only codes (e.g. expected-doctype-but-got-*,
// non-space-character-in-table-text, foster-parented-character) are
// intentionally absent — they belong to the tree builder, which is this
// package's Non-goal.
const (
	AbruptClosingOfEmptyComment                               = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier                             = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier                              = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharacterReference                 = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                                         = "cdata-in-html-content"
	CharacterReferenceOutsideUnicodeRange                      = "character-reference-outside-unicode-range"
	ControlCharacterInInputStream                              = "control-character-in-input-stream"
	ControlCharacterReference                                  = "control-character-reference"
	DuplicateAttribute                                         = "duplicate-attribute"
	EndTagWithAttributes                                       = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                                  = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                                           = "eof-before-tag-name"
	EOFInCDATA                                                 = "eof-in-cdata"
	EOFInComment                                                = "eof-in-comment"
	EOFInDoctype                                                = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText                              = "eof-in-script-html-comment-like-text"
	EOFInTag                                                    = "eof-in-tag"
	IncorrectlyClosedComment                                    = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                                    = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterDoctypeName                    = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName                              = "invalid-first-character-of-tag-name"
	MissingAttributeValue                                       = "missing-attribute-value"
	MissingDoctypeName                                          = "missing-doctype-name"
	MissingDoctypePublicIdentifier                              = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier                              = "missing-doctype-system-identifier"
	MissingEndTagName                                           = "missing-end-tag-name"
	MissingQuoteBeforeDoctypePublicIdentifier                   = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier                   = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharacterReference                     = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterDoctypePublicKeyword                  = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword                  = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName                          = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes                          = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers   = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                                               = "nested-comment"
	NoncharacterCharacterReference                              = "noncharacter-character-reference"
	NoncharacterInInputStream                                   = "noncharacter-in-input-stream"
	NonVoidHTMLElementStartTagWithTrailingSolidus               = "non-void-html-element-start-tag-with-trailing-solidus"
	NullCharacterReference                                      = "null-character-reference"
	SurrogateCharacterReference                                 = "surrogate-character-reference"
	SurrogateInInputStream                                      = "surrogate-in-input-stream"
	UnexpectedCharacterAfterDoctypeSystemIdentifier             = "unexpected-character-after-doctype-system-identifier"
	UnexpectedCharacterInAttributeName                          = "unexpected-character-in-attribute-name"
	UnexpectedCharacterInUnquotedAttributeValue                 = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttributeName                     = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                                     = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName                      = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                                      = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference                              = "unknown-named-character-reference"
)

// ParseError is a recoverable, observational finding logged during
// tokenization: a stable code at a source location.
type ParseError struct {
	Location Location
	Code     string
}

func (e ParseError) String() string {
	return fmt.Sprintf("%s at %d:%d", e.Code, e.Location.Line, e.Location.Column)
}

// ErrorLogger is an append-only, deduplicated list of parse errors, shared
// between the tokenizer and the embedding parser. Deduplication is keyed on
// the (location, code) pair, matching the source's actual policy rather
// than the letter of the HTML5 spec (which does not dedupe) — preserved
// here for fixture compatibility per the spec's own open question.
type ErrorLogger struct {
	errors []ParseError
}

// NewErrorLogger returns an empty logger.
func NewErrorLogger() *ErrorLogger {
	return &ErrorLogger{}
}

// Add appends (location, code) unless an identical pair is already present.
func (l *ErrorLogger) Add(loc Location, code string) {
	for _, e := range l.errors {
		if e.Location == loc && e.Code == code {
			return
		}
	}
	l.errors = append(l.errors, ParseError{Location: loc, Code: code})
}

// Snapshot returns a copy of the logged errors, safe for the caller to
// retain or mutate.
func (l *ErrorLogger) Snapshot() []ParseError {
	out := make([]ParseError, len(l.errors))
	copy(out, l.errors)
	return out
}

// Len reports how many distinct (location, code) pairs have been logged.
func (l *ErrorLogger) Len() int {
	return len(l.errors)
}
