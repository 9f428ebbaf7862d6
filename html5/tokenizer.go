package html5

import "strings"

// HTMLNamespace is the default namespace assumed when a Hint carries no
// explicit AdjustedNodeNamespace.
const HTMLNamespace = "http://www.w3.org/1999/xhtml"

// Options configures a new Tokenizer. The zero value starts in Data with
// no last start tag and no per-token size limit.
type Options struct {
	InitialState State
	LastStartTag string
	// MaxTokenBytes, if non-zero, bounds the buffers used to accumulate an
	// in-progress comment, doctype identifier, attribute value, or text
	// run (their combined size, checked before each step). Exceeding it
	// raises ErrTokenTooLarge as a fatal StreamError. The spec does not
	// require this; it exists for defensive embedders (spec.md §5).
	MaxTokenBytes int
}

// Hint carries the narrow bit of information the embedding parser can
// supply per spec.md §4.4: which namespace the adjusted current node is
// in. A zero Hint is equivalent to the HTML namespace.
type Hint struct {
	AdjustedNodeNamespace string
}

func (h Hint) namespace() string {
	if h.AdjustedNodeNamespace == "" {
		return HTMLNamespace
	}
	return h.AdjustedNodeNamespace
}

// ErrTokenTooLarge is wrapped in a *StreamError when MaxTokenBytes is
// exceeded.
type tokenTooLargeError struct{}

func (tokenTooLargeError) Error() string { return "html5: token exceeds MaxTokenBytes" }

// ErrTokenTooLarge is the sentinel error wrapped by the *StreamError
// surfaced from NextToken when Options.MaxTokenBytes is exceeded.
var ErrTokenTooLarge error = tokenTooLargeError{}

// Tokenizer is the HTML5 tokenizer state machine. It is not safe for
// concurrent use: a session is single-threaded, cooperative and
// pull-based (spec.md §5).
type Tokenizer struct {
	stream   *Stream
	logger   *ErrorLogger
	interner *nameInterner

	state State
	queue []Token

	consumed     strings.Builder
	textLoc      Location // location of consumed's first rune
	lastTokenLoc Location // location the in-progress tag/comment/doctype opened at

	current        *Token
	nameBuf        []rune // lowercased tag/doctype name under construction
	temp           []rune // original-case scratch buffer (end-tag replay, double-escape match)
	commentData    strings.Builder
	commentDashLoc Location // location of the '-' that opened the pending "--" run

	attrNameBuf     []rune
	attrNameLoc     Location
	attrValue       strings.Builder
	attrs           map[string]string
	haveAttr        bool
	pendingName     string
	pendingSkip     bool
	hadDiscarded    bool     // an end tag collected (and discarded) an attribute
	hadDiscardedLoc Location // location of the first discarded attribute's name

	// selfClosingSolidusLoc is the location of the '/' that transitioned
	// the state machine into SelfClosingStart, captured at each of the
	// states that make that transition. SelfClosingStart itself reads one
	// further character past the '/', so it cannot recover this location
	// from CurrentLocation() on entry.
	selfClosingSolidusLoc Location

	doctypePublic strings.Builder
	doctypeSystem strings.Builder
	havePublic    bool
	haveSystem    bool

	lastStartTag string

	maxTokenBytes int
	eofLoc        *Location
	fatalErr      *StreamError
}

// New creates a Tokenizer reading from stream, logging parse errors to
// logger and character-input errors to the same logger (spec.md §6).
func New(stream *Stream, opts Options, logger *ErrorLogger) *Tokenizer {
	if logger == nil {
		logger = NewErrorLogger()
	}
	state := opts.InitialState
	return &Tokenizer{
		stream:        stream,
		logger:        logger,
		interner:      newNameInterner(),
		state:         state,
		lastStartTag:  opts.LastStartTag,
		maxTokenBytes: opts.MaxTokenBytes,
	}
}

// SetState overrides the tokenizer's current state, used by the embedding
// parser after switching an element into RCDATA/RAWTEXT/ScriptData/
// PLAINTEXT per spec.md §4.4.
func (t *Tokenizer) SetState(s State) { t.state = s }

// SetLastStartTag overrides the name used by the appropriate-end-tag test.
func (t *Tokenizer) SetLastStartTag(name string) { t.lastStartTag = name }

// PushFront inserts tokens at the head of the pending queue, used by tree
// construction to re-inject synthesized tokens (spec.md §4.4). The
// tokenizer itself never calls this.
func (t *Tokenizer) PushFront(tokens []Token) {
	t.queue = append(append([]Token{}, tokens...), t.queue...)
}

// Errors returns a snapshot of the logged parse errors.
func (t *Tokenizer) Errors() []ParseError { return t.logger.Snapshot() }

// NextToken pulls scalars from the stream, drives the state machine, and
// returns the next token. Once the stream ends, it returns an EOFToken on
// every subsequent call, at the same location. A non-nil error return is
// always a fatal *StreamError; it terminates the session.
func (t *Tokenizer) NextToken(hint Hint) (Token, error) {
	for len(t.queue) == 0 {
		if t.fatalErr != nil {
			return Token{}, t.fatalErr
		}
		if t.state == stateEOF {
			t.queue = append(t.queue, Token{Type: EOFToken, Location: *t.eofLoc})
			break
		}
		t.step(hint)
		if err := t.stream.Err(); err != nil && t.fatalErr == nil {
			t.fatalErr = err
		}
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]
	if t.fatalErr != nil && tok.Type != EOFToken {
		// A fatal stream error was recorded mid-token; let any
		// already-queued tokens drain first, then surface the error.
	}
	return tok, nil
}

// ---- token/text emission helpers -----------------------------------------

func (t *Tokenizer) flushText() {
	if t.consumed.Len() == 0 {
		return
	}
	t.queue = append(t.queue, Token{Type: TextToken, Data: t.consumed.String(), Location: t.textLoc})
	t.consumed.Reset()
}

func (t *Tokenizer) emitNonText(tok Token) {
	t.flushText()
	t.queue = append(t.queue, tok)
}

// appendChar appends r (read at loc) to the pending text run, recording
// loc as the run's location if this is the run's first rune.
func (t *Tokenizer) appendChar(r rune, loc Location) {
	if t.consumed.Len() == 0 {
		t.textLoc = loc
	}
	t.consumed.WriteRune(r)
}

func (t *Tokenizer) appendLiteral(s string, loc Location) {
	if t.consumed.Len() == 0 {
		t.textLoc = loc
	}
	t.consumed.WriteString(s)
}

func (t *Tokenizer) finishAtEOF() {
	t.current = nil
	t.flushText()
	loc := t.stream.CurrentLocation()
	t.eofLoc = &loc
	t.queue = append(t.queue, Token{Type: EOFToken, Location: loc})
	t.state = stateEOF
}

func (t *Tokenizer) openToken(typ TokenType) {
	t.current = &Token{Type: typ, Location: t.lastTokenLoc}
	t.nameBuf = t.nameBuf[:0]
	t.attrs = nil
	t.hadDiscarded = false
	t.hadDiscardedLoc = Location{}
	t.havePublic, t.haveSystem = false, false
	t.doctypePublic.Reset()
	t.doctypeSystem.Reset()
	t.commentData.Reset()
}

// beginBogusComment opens a comment token seeded with prefix already in
// its data buffer (used for the unrecognized-markup-declaration and
// cdata-in-html-content paths, spec.md §4.4) and switches to BogusComment.
func (t *Tokenizer) beginBogusComment(prefix string) {
	t.openToken(CommentToken)
	t.commentData.WriteString(prefix)
	t.state = BogusComment
}

func (t *Tokenizer) emitCurrentToken() {
	if t.current == nil {
		panic("html5: emitCurrentToken called with no token under construction")
	}
	switch t.current.Type {
	case StartTagToken, EndTagToken:
		t.current.Name = t.interner.Intern(t.nameBuf)
		if t.current.Type == StartTagToken {
			t.current.Attr = t.attrs
			t.lastStartTag = t.current.Name
		} else if t.hadDiscarded {
			t.logger.Add(t.hadDiscardedLoc, EndTagWithAttributes)
		}
	case CommentToken:
		t.current.Data = t.commentData.String()
	case DocTypeToken:
		t.current.Name = t.interner.Intern(t.nameBuf)
		if t.havePublic {
			s := t.doctypePublic.String()
			t.current.PublicID = &s
		}
		if t.haveSystem {
			s := t.doctypeSystem.String()
			t.current.SystemID = &s
		}
	}
	tok := *t.current
	t.current = nil
	t.emitNonText(tok)
}

// ---- character classes -----------------------------------------------------

func isWhitespace(r rune) bool {
	return r == '\t' || r == '\n' || r == '\f' || r == ' '
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIILower(r rune) bool { return r >= 'a' && r <= 'z' }

// ---- attribute helpers ------------------------------------------------------

func (t *Tokenizer) appendTagNameRune(r rune) {
	if isASCIIUpper(r) {
		r += 0x20
	} else if r == 0 {
		t.logger.Add(t.stream.CurrentLocation(), UnexpectedNullCharacter)
		r = replacementChar
	}
	t.nameBuf = append(t.nameBuf, r)
}

func (t *Tokenizer) appendAttrNameRune(r rune, loc Location) {
	if len(t.attrNameBuf) == 0 {
		t.attrNameLoc = loc
	}
	if isASCIIUpper(r) {
		r += 0x20
	} else if r == 0 {
		t.logger.Add(loc, UnexpectedNullCharacter)
		r = replacementChar
	}
	t.attrNameBuf = append(t.attrNameBuf, r)
}

func (t *Tokenizer) appendAttrValueRune(r rune) {
	if r == 0 {
		t.logger.Add(t.stream.CurrentLocation(), UnexpectedNullCharacter)
		r = replacementChar
	}
	t.attrValue.WriteRune(r)
}

// commitAttrName finalizes the attribute name built in attrNameBuf,
// deciding (and logging, per spec.md §3) whether it will be stored or
// discarded once its value is known.
func (t *Tokenizer) commitAttrName() {
	name := t.interner.Intern(t.attrNameBuf)
	t.attrNameBuf = t.attrNameBuf[:0]
	t.pendingName = name
	t.haveAttr = true
	if t.current.Type == EndTagToken {
		t.pendingSkip = true
		return
	}
	if _, exists := t.attrs[name]; exists {
		t.logger.Add(t.attrNameLoc, DuplicateAttribute)
		t.pendingSkip = true
		return
	}
	t.pendingSkip = false
}

func (t *Tokenizer) finishAttr() {
	if !t.haveAttr {
		return
	}
	if t.pendingSkip {
		if t.current.Type == EndTagToken {
			if !t.hadDiscarded {
				t.hadDiscardedLoc = t.attrNameLoc
			}
			t.hadDiscarded = true
		}
	} else {
		if t.attrs == nil {
			t.attrs = map[string]string{}
		}
		t.attrs[t.pendingName] = t.attrValue.String()
	}
	t.attrValue.Reset()
	t.pendingName = ""
	t.pendingSkip = false
	t.haveAttr = false
}

// reportEndTagTrailingSolidus logs end-tag-with-trailing-solidus at loc,
// the location of the '/' itself. SelfClosingStart is entered one
// character past that '/', so callers pass t.selfClosingSolidusLoc,
// captured by the state that read the '/' before transitioning.
func (t *Tokenizer) reportEndTagTrailingSolidus(loc Location) {
	t.logger.Add(loc, EndTagWithTrailingSolidus)
}

// ---- main loop ---------------------------------------------------------

// tokenTooLarge reports whether the buffers the state machine accumulates
// for a single in-progress token have exceeded maxTokenBytes.
func (t *Tokenizer) tokenTooLarge() bool {
	if t.maxTokenBytes == 0 {
		return false
	}
	n := t.consumed.Len() + t.commentData.Len() + t.doctypePublic.Len() + t.doctypeSystem.Len() + t.attrValue.Len()
	return n > t.maxTokenBytes
}

func (t *Tokenizer) step(hint Hint) {
	if t.tokenTooLarge() {
		t.stream.Fail(ErrTokenTooLarge)
		t.current = nil
		t.state = stateEOF
		return
	}
	switch t.state {

	case Data:
		t.stepData()
	case RCDATA:
		t.stepRCDATA()
	case RAWTEXT:
		t.stepRAWTEXT()
	case ScriptData:
		t.stepScriptData()
	case PLAINTEXT:
		t.stepPLAINTEXT()
	case TagOpen:
		t.stepTagOpen()
	case EndTagOpen:
		t.stepEndTagOpen()
	case TagName:
		t.stepTagName()
	case RCDATALessThanSign:
		t.stepRCDATALessThanSign()
	case RCDATAEndTagOpen:
		t.endTagOpenStep(RCDATAEndTagName, RCDATA)
	case RCDATAEndTagName:
		t.endTagNameStep(RCDATA)
	case RAWTEXTLessThanSign:
		t.stepRAWTEXTLessThanSign()
	case RAWTEXTEndTagOpen:
		t.endTagOpenStep(RAWTEXTEndTagName, RAWTEXT)
	case RAWTEXTEndTagName:
		t.endTagNameStep(RAWTEXT)
	case ScriptDataLessThanSign:
		t.stepScriptDataLessThanSign()
	case ScriptDataEndTagOpen:
		t.endTagOpenStep(ScriptDataEndTagName, ScriptData)
	case ScriptDataEndTagName:
		t.endTagNameStep(ScriptData)
	case ScriptDataEscapeStart:
		t.stepScriptDataEscapeStart()
	case ScriptDataEscapeStartDash:
		t.stepScriptDataEscapeStartDash()
	case ScriptDataEscaped:
		t.stepScriptDataEscaped()
	case ScriptDataEscapedDash:
		t.stepScriptDataEscapedDash()
	case ScriptDataEscapedDashDash:
		t.stepScriptDataEscapedDashDash()
	case ScriptDataEscapedLessThanSign:
		t.stepScriptDataEscapedLessThanSign()
	case ScriptDataEscapedEndTagOpen:
		t.endTagOpenStep(ScriptDataEscapedEndTagName, ScriptDataEscaped)
	case ScriptDataEscapedEndTagName:
		t.endTagNameStep(ScriptDataEscaped)
	case ScriptDataDoubleEscapeStart:
		t.stepScriptDataDoubleEscapeStart()
	case ScriptDataDoubleEscaped:
		t.stepScriptDataDoubleEscaped()
	case ScriptDataDoubleEscapedDash:
		t.stepScriptDataDoubleEscapedDash()
	case ScriptDataDoubleEscapedDashDash:
		t.stepScriptDataDoubleEscapedDashDash()
	case ScriptDataDoubleEscapedLessThanSign:
		t.stepScriptDataDoubleEscapedLessThanSign()
	case ScriptDataDoubleEscapeEnd:
		t.stepScriptDataDoubleEscapeEnd()
	case BeforeAttributeName:
		t.stepBeforeAttributeName()
	case AttributeName:
		t.stepAttributeName()
	case AfterAttributeName:
		t.stepAfterAttributeName()
	case BeforeAttributeValue:
		t.stepBeforeAttributeValue()
	case AttributeValueDoubleQuoted:
		t.stepAttributeValueQuoted('"')
	case AttributeValueSingleQuoted:
		t.stepAttributeValueQuoted('\'')
	case AttributeValueUnquoted:
		t.stepAttributeValueUnquoted()
	case AfterAttributeValueQuoted:
		t.stepAfterAttributeValueQuoted()
	case SelfClosingStart:
		t.stepSelfClosingStart()
	case BogusComment:
		t.stepBogusComment()
	case MarkupDeclarationOpen:
		t.stepMarkupDeclarationOpen(hint)
	case CommentStart:
		t.stepCommentStart()
	case CommentStartDash:
		t.stepCommentStartDash()
	case Comment:
		t.stepComment()
	case CommentLessThanSign:
		t.stepCommentLessThanSign()
	case CommentLessThanSignBang:
		t.stepCommentLessThanSignBang()
	case CommentLessThanSignBangDash:
		t.stepCommentLessThanSignBangDash()
	case CommentLessThanSignBangDashDash:
		t.stepCommentLessThanSignBangDashDash()
	case CommentEndDash:
		t.stepCommentEndDash()
	case CommentEnd:
		t.stepCommentEnd()
	case CommentEndBang:
		t.stepCommentEndBang()
	case DOCTYPE:
		t.stepDOCTYPE()
	case BeforeDOCTYPEName:
		t.stepBeforeDOCTYPEName()
	case DOCTYPEName:
		t.stepDOCTYPEName()
	case AfterDOCTYPEName:
		t.stepAfterDOCTYPEName()
	case AfterDOCTYPEPublicKeyword:
		t.stepAfterDOCTYPEPublicKeyword()
	case BeforeDOCTYPEPublicIdentifier:
		t.stepBeforeDOCTYPEPublicIdentifier()
	case DOCTYPEPublicIdentifierDoubleQuoted:
		t.stepDOCTYPEPublicIdentifierQuoted('"')
	case DOCTYPEPublicIdentifierSingleQuoted:
		t.stepDOCTYPEPublicIdentifierQuoted('\'')
	case AfterDOCTYPEPublicIdentifier:
		t.stepAfterDOCTYPEPublicIdentifier()
	case BetweenDOCTYPEPublicAndSystemIdentifiers:
		t.stepBetweenDOCTYPEPublicAndSystemIdentifiers()
	case AfterDOCTYPESystemKeyword:
		t.stepAfterDOCTYPESystemKeyword()
	case BeforeDOCTYPESystemIdentifier:
		t.stepBeforeDOCTYPESystemIdentifier()
	case DOCTYPESystemIdentifierDoubleQuoted:
		t.stepDOCTYPESystemIdentifierQuoted('"')
	case DOCTYPESystemIdentifierSingleQuoted:
		t.stepDOCTYPESystemIdentifierQuoted('\'')
	case AfterDOCTYPESystemIdentifier:
		t.stepAfterDOCTYPESystemIdentifier()
	case BogusDOCTYPE:
		t.stepBogusDOCTYPE()
	case CDATASection:
		t.stepCDATASection()
	case CDATASectionBracket:
		t.stepCDATASectionBracket()
	case CDATASectionEnd:
		t.stepCDATASectionEnd()
	case CharacterReferenceInData:
		t.stepCharacterReferenceInData()
	case CharacterReferenceInRcData:
		t.stepCharacterReferenceInRcData()
	default:
		panic("html5: unhandled state " + t.state.String())
	}
}
