package html5

import "strings"

// This file holds the per-state step functions dispatched from step() in
// tokenizer.go, grouped the way spec.md §4.2 groups the state glossary:
// character-data states, tag-open/name states, the RCDATA/RAWTEXT/
// ScriptData end-tag and escape families, attribute states, comment
// states, DOCTYPE states, and CDATA section.

// ---- character-data states ----------------------------------------------

func (t *Tokenizer) stepData() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharEOF:
		t.finishAtEOF()
	case c.Kind == CharScalar && c.R == '&':
		t.state = CharacterReferenceInData
	case c.Kind == CharScalar && c.R == '<':
		t.lastTokenLoc = loc
		t.state = TagOpen
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
	default:
		t.appendChar(c.R, loc)
	}
}

func (t *Tokenizer) stepRCDATA() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharEOF:
		t.finishAtEOF()
	case c.Kind == CharScalar && c.R == '&':
		t.state = CharacterReferenceInRcData
	case c.Kind == CharScalar && c.R == '<':
		t.lastTokenLoc = loc
		t.state = RCDATALessThanSign
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
	default:
		t.appendChar(c.R, loc)
	}
}

func (t *Tokenizer) stepRAWTEXT() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharEOF:
		t.finishAtEOF()
	case c.Kind == CharScalar && c.R == '<':
		t.lastTokenLoc = loc
		t.state = RAWTEXTLessThanSign
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
	default:
		t.appendChar(c.R, loc)
	}
}

func (t *Tokenizer) stepScriptData() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharEOF:
		t.finishAtEOF()
	case c.Kind == CharScalar && c.R == '<':
		t.lastTokenLoc = loc
		t.state = ScriptDataLessThanSign
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
	default:
		t.appendChar(c.R, loc)
	}
}

func (t *Tokenizer) stepPLAINTEXT() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharEOF:
		t.finishAtEOF()
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
	default:
		t.appendChar(c.R, loc)
	}
}

func (t *Tokenizer) stepCharacterReferenceInData() {
	loc := t.stream.CurrentLocation()
	result := resolveCharacterReference(t.stream, t.logger, false, false, 0)
	t.appendLiteral(result, loc)
	t.state = Data
}

func (t *Tokenizer) stepCharacterReferenceInRcData() {
	loc := t.stream.CurrentLocation()
	result := resolveCharacterReference(t.stream, t.logger, false, false, 0)
	t.appendLiteral(result, loc)
	t.state = RCDATA
}

// ---- tag open / tag name -------------------------------------------------

func (t *Tokenizer) stepTagOpen() {
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '!':
		t.state = MarkupDeclarationOpen
	case c.Kind == CharScalar && c.R == '/':
		t.state = EndTagOpen
	case c.Kind == CharScalar && isASCIIAlpha(c.R):
		t.stream.UnreadOne()
		t.openToken(StartTagToken)
		t.state = TagName
	case c.Kind == CharScalar && c.R == '?':
		t.logger.Add(t.lastTokenLoc, UnexpectedQuestionMarkInsteadOfTagName)
		t.stream.UnreadOne()
		t.beginBogusComment("")
	case c.Kind == CharEOF:
		t.logger.Add(t.lastTokenLoc, EOFBeforeTagName)
		t.appendLiteral("<", t.lastTokenLoc)
		t.finishAtEOF()
	default:
		t.logger.Add(t.lastTokenLoc, InvalidFirstCharacterOfTagName)
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.appendLiteral("<", t.lastTokenLoc)
		t.state = Data
	}
}

func (t *Tokenizer) stepEndTagOpen() {
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isASCIIAlpha(c.R):
		t.stream.UnreadOne()
		t.openToken(EndTagToken)
		t.state = TagName
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(t.lastTokenLoc, MissingEndTagName)
		t.state = Data
	case c.Kind == CharEOF:
		t.logger.Add(t.lastTokenLoc, EOFBeforeTagName)
		t.appendLiteral("</", t.lastTokenLoc)
		t.finishAtEOF()
	default:
		t.logger.Add(t.lastTokenLoc, InvalidFirstCharacterOfTagName)
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.beginBogusComment("")
	}
}

func (t *Tokenizer) stepTagName() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.state = BeforeAttributeName
	case c.Kind == CharScalar && c.R == '/':
		t.selfClosingSolidusLoc = loc
		t.state = SelfClosingStart
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInTag)
		t.finishAtEOF()
	case c.Kind == CharSurrogate:
		t.nameBuf = append(t.nameBuf, c.R)
	default:
		t.appendTagNameRune(c.R)
	}
}

// ---- RCDATA/RAWTEXT/ScriptData end-tag and escape families --------------

func (t *Tokenizer) endTagOpenStep(nameState, base State) {
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && isASCIIAlpha(c.R) {
		t.stream.UnreadOne()
		t.openToken(EndTagToken)
		t.temp = t.temp[:0]
		t.state = nameState
		return
	}
	loc := t.lastTokenLoc
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.appendLiteral("</", loc)
	t.state = base
}

func (t *Tokenizer) endTagNameStep(base State) {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar {
		switch {
		case isWhitespace(c.R):
			if t.isAppropriateEndTag() {
				t.state = BeforeAttributeName
				return
			}
		case c.R == '/':
			if t.isAppropriateEndTag() {
				t.selfClosingSolidusLoc = loc
				t.state = SelfClosingStart
				return
			}
		case c.R == '>':
			if t.isAppropriateEndTag() {
				t.emitCurrentToken()
				t.state = Data
				return
			}
		case isASCIIUpper(c.R):
			t.nameBuf = append(t.nameBuf, c.R+0x20)
			t.temp = append(t.temp, c.R)
			return
		case isASCIILower(c.R):
			t.nameBuf = append(t.nameBuf, c.R)
			t.temp = append(t.temp, c.R)
			return
		}
	}
	t.abandonEndTagName(base, c)
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.lastStartTag != "" && string(t.nameBuf) == t.lastStartTag
}

func (t *Tokenizer) abandonEndTagName(base State, c Char) {
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.appendLiteral("</", t.lastTokenLoc)
	for _, r := range t.temp {
		t.appendChar(r, t.lastTokenLoc)
	}
	t.temp = t.temp[:0]
	t.nameBuf = t.nameBuf[:0]
	t.current = nil
	t.state = base
}

func (t *Tokenizer) stepRCDATALessThanSign() {
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && c.R == '/' {
		t.temp = t.temp[:0]
		t.state = RCDATAEndTagOpen
		return
	}
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.appendLiteral("<", t.lastTokenLoc)
	t.state = RCDATA
}

func (t *Tokenizer) stepRAWTEXTLessThanSign() {
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && c.R == '/' {
		t.temp = t.temp[:0]
		t.state = RAWTEXTEndTagOpen
		return
	}
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.appendLiteral("<", t.lastTokenLoc)
	t.state = RAWTEXT
}

func (t *Tokenizer) stepScriptDataLessThanSign() {
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '/':
		t.temp = t.temp[:0]
		t.state = ScriptDataEndTagOpen
	case c.Kind == CharScalar && c.R == '!':
		t.appendLiteral("<!", t.lastTokenLoc)
		t.state = ScriptDataEscapeStart
	default:
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.appendLiteral("<", t.lastTokenLoc)
		t.state = ScriptData
	}
}

func (t *Tokenizer) stepScriptDataEscapeStart() {
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && c.R == '-' {
		t.appendLiteral("-", t.lastTokenLoc)
		t.state = ScriptDataEscapeStartDash
		return
	}
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.state = ScriptData
}

func (t *Tokenizer) stepScriptDataEscapeStartDash() {
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && c.R == '-' {
		t.appendLiteral("-", t.lastTokenLoc)
		t.state = ScriptDataEscapedDashDash
		return
	}
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.state = ScriptData
}

func (t *Tokenizer) stepScriptDataEscaped() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.appendChar('-', loc)
		t.state = ScriptDataEscapedDash
	case c.Kind == CharScalar && c.R == '<':
		t.state = ScriptDataEscapedLessThanSign
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInScriptHTMLCommentLikeText)
		t.finishAtEOF()
	default:
		t.appendChar(c.R, loc)
	}
}

func (t *Tokenizer) stepScriptDataEscapedDash() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.appendChar('-', loc)
		t.state = ScriptDataEscapedDashDash
	case c.Kind == CharScalar && c.R == '<':
		t.state = ScriptDataEscapedLessThanSign
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
		t.state = ScriptDataEscaped
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInScriptHTMLCommentLikeText)
		t.finishAtEOF()
	default:
		t.appendChar(c.R, loc)
		t.state = ScriptDataEscaped
	}
}

func (t *Tokenizer) stepScriptDataEscapedDashDash() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.appendChar('-', loc)
	case c.Kind == CharScalar && c.R == '<':
		t.state = ScriptDataEscapedLessThanSign
	case c.Kind == CharScalar && c.R == '>':
		t.appendChar('>', loc)
		t.state = ScriptData
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
		t.state = ScriptDataEscaped
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInScriptHTMLCommentLikeText)
		t.finishAtEOF()
	default:
		t.appendChar(c.R, loc)
		t.state = ScriptDataEscaped
	}
}

func (t *Tokenizer) stepScriptDataEscapedLessThanSign() {
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '/':
		t.temp = t.temp[:0]
		t.state = ScriptDataEscapedEndTagOpen
	case c.Kind == CharScalar && isASCIIAlpha(c.R):
		t.temp = t.temp[:0]
		t.appendLiteral("<", t.lastTokenLoc)
		t.stream.UnreadOne()
		t.state = ScriptDataDoubleEscapeStart
	default:
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.appendLiteral("<", t.lastTokenLoc)
		t.state = ScriptDataEscaped
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscapeStart() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && (isWhitespace(c.R) || c.R == '/' || c.R == '>'):
		t.appendChar(c.R, loc)
		if string(t.temp) == "script" {
			t.state = ScriptDataDoubleEscaped
		} else {
			t.state = ScriptDataEscaped
		}
	case c.Kind == CharScalar && isASCIIUpper(c.R):
		t.temp = append(t.temp, c.R+0x20)
		t.appendChar(c.R, loc)
	case c.Kind == CharScalar && isASCIILower(c.R):
		t.temp = append(t.temp, c.R)
		t.appendChar(c.R, loc)
	default:
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = ScriptDataEscaped
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscaped() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.appendChar('-', loc)
		t.state = ScriptDataDoubleEscapedDash
	case c.Kind == CharScalar && c.R == '<':
		t.appendChar('<', loc)
		t.state = ScriptDataDoubleEscapedLessThanSign
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInScriptHTMLCommentLikeText)
		t.finishAtEOF()
	default:
		t.appendChar(c.R, loc)
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDash() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.appendChar('-', loc)
		t.state = ScriptDataDoubleEscapedDashDash
	case c.Kind == CharScalar && c.R == '<':
		t.appendChar('<', loc)
		t.state = ScriptDataDoubleEscapedLessThanSign
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
		t.state = ScriptDataDoubleEscaped
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInScriptHTMLCommentLikeText)
		t.finishAtEOF()
	default:
		t.appendChar(c.R, loc)
		t.state = ScriptDataDoubleEscaped
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscapedDashDash() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.appendChar('-', loc)
	case c.Kind == CharScalar && c.R == '<':
		t.appendChar('<', loc)
		t.state = ScriptDataDoubleEscapedLessThanSign
	case c.Kind == CharScalar && c.R == '>':
		t.appendChar('>', loc)
		t.state = ScriptData
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.appendChar(replacementChar, loc)
		t.state = ScriptDataDoubleEscaped
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInScriptHTMLCommentLikeText)
		t.finishAtEOF()
	default:
		t.appendChar(c.R, loc)
		t.state = ScriptDataDoubleEscaped
	}
}

func (t *Tokenizer) stepScriptDataDoubleEscapedLessThanSign() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && c.R == '/' {
		t.temp = t.temp[:0]
		t.appendChar('/', loc)
		t.state = ScriptDataDoubleEscapeEnd
		return
	}
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.state = ScriptDataDoubleEscaped
}

func (t *Tokenizer) stepScriptDataDoubleEscapeEnd() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && (isWhitespace(c.R) || c.R == '/' || c.R == '>'):
		t.appendChar(c.R, loc)
		if string(t.temp) == "script" {
			t.state = ScriptDataEscaped
		} else {
			t.state = ScriptDataDoubleEscaped
		}
	case c.Kind == CharScalar && isASCIIUpper(c.R):
		t.temp = append(t.temp, c.R+0x20)
		t.appendChar(c.R, loc)
	case c.Kind == CharScalar && isASCIILower(c.R):
		t.temp = append(t.temp, c.R)
		t.appendChar(c.R, loc)
	default:
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = ScriptDataDoubleEscaped
	}
}

// ---- attribute states -----------------------------------------------------

func (t *Tokenizer) stepBeforeAttributeName() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && (c.R == '/' || c.R == '>'):
		t.stream.UnreadOne()
		t.state = AfterAttributeName
	case c.Kind == CharEOF:
		t.state = AfterAttributeName
	case c.Kind == CharScalar && c.R == '=':
		t.logger.Add(loc, UnexpectedEqualsSignBeforeAttributeName)
		t.attrNameBuf = t.attrNameBuf[:0]
		t.appendAttrNameRune('=', loc)
		t.state = AttributeName
	default:
		t.attrNameBuf = t.attrNameBuf[:0]
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = AttributeName
	}
}

func (t *Tokenizer) stepAttributeName() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.stream.UnreadOne()
		t.commitAttrName()
		t.state = AfterAttributeName
	case c.Kind == CharScalar && (c.R == '/' || c.R == '>'):
		t.stream.UnreadOne()
		t.commitAttrName()
		t.state = AfterAttributeName
	case c.Kind == CharEOF:
		t.commitAttrName()
		t.state = AfterAttributeName
	case c.Kind == CharScalar && c.R == '=':
		t.commitAttrName()
		t.state = BeforeAttributeValue
	case c.Kind == CharScalar && (c.R == '"' || c.R == '\'' || c.R == '<'):
		t.logger.Add(loc, UnexpectedCharacterInAttributeName)
		t.appendAttrNameRune(c.R, loc)
	case c.Kind == CharScalar:
		t.appendAttrNameRune(c.R, loc)
	case c.Kind == CharSurrogate:
		t.attrNameBuf = append(t.attrNameBuf, c.R)
	}
}

func (t *Tokenizer) stepAfterAttributeName() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && c.R == '/':
		t.finishAttr()
		t.selfClosingSolidusLoc = loc
		t.state = SelfClosingStart
	case c.Kind == CharScalar && c.R == '=':
		t.state = BeforeAttributeValue
	case c.Kind == CharScalar && c.R == '>':
		t.finishAttr()
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.finishAttr()
		t.logger.Add(loc, EOFInTag)
		t.finishAtEOF()
	default:
		t.finishAttr()
		t.attrNameBuf = t.attrNameBuf[:0]
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = AttributeName
	}
}

func (t *Tokenizer) stepBeforeAttributeValue() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && c.R == '"':
		t.attrValue.Reset()
		t.state = AttributeValueDoubleQuoted
	case c.Kind == CharScalar && c.R == '\'':
		t.attrValue.Reset()
		t.state = AttributeValueSingleQuoted
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, MissingAttributeValue)
		t.finishAttr()
		t.emitCurrentToken()
		t.state = Data
	default:
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.attrValue.Reset()
		t.state = AttributeValueUnquoted
	}
}

func (t *Tokenizer) stepAttributeValueQuoted(quote rune) {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == quote:
		t.finishAttr()
		t.state = AfterAttributeValueQuoted
	case c.Kind == CharScalar && c.R == '&':
		result := resolveCharacterReference(t.stream, t.logger, true, true, quote)
		t.attrValue.WriteString(result)
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.attrValue.WriteRune(replacementChar)
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInTag)
		t.finishAtEOF()
	case c.Kind == CharScalar:
		t.attrValue.WriteRune(c.R)
	case c.Kind == CharSurrogate:
		t.attrValue.WriteRune(c.R)
	}
}

func (t *Tokenizer) stepAttributeValueUnquoted() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.finishAttr()
		t.state = BeforeAttributeName
	case c.Kind == CharScalar && c.R == '&':
		result := resolveCharacterReference(t.stream, t.logger, true, true, '>')
		t.attrValue.WriteString(result)
	case c.Kind == CharScalar && c.R == '>':
		t.finishAttr()
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.attrValue.WriteRune(replacementChar)
	case c.Kind == CharScalar && (c.R == '"' || c.R == '\'' || c.R == '<' || c.R == '=' || c.R == '`'):
		t.logger.Add(loc, UnexpectedCharacterInUnquotedAttributeValue)
		t.attrValue.WriteRune(c.R)
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInTag)
		t.finishAtEOF()
	default:
		t.attrValue.WriteRune(c.R)
	}
}

func (t *Tokenizer) stepAfterAttributeValueQuoted() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.state = BeforeAttributeName
	case c.Kind == CharScalar && c.R == '/':
		t.selfClosingSolidusLoc = loc
		t.state = SelfClosingStart
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInTag)
		t.finishAtEOF()
	default:
		t.logger.Add(loc, MissingWhitespaceBetweenAttributes)
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BeforeAttributeName
	}
}

func (t *Tokenizer) stepSelfClosingStart() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '>':
		if t.current.Type == EndTagToken {
			t.reportEndTagTrailingSolidus(t.selfClosingSolidusLoc)
		} else {
			t.current.SelfClosing = true
		}
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInTag)
		t.finishAtEOF()
	default:
		t.logger.Add(loc, UnexpectedSolidusInTag)
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BeforeAttributeName
	}
}

// ---- bogus comment / markup declaration open -----------------------------

func (t *Tokenizer) stepBogusComment() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.emitCurrentToken()
		t.finishAtEOF()
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.commentData.WriteRune(replacementChar)
	case c.Kind == CharScalar:
		t.commentData.WriteRune(c.R)
	case c.Kind == CharSurrogate:
		t.commentData.WriteRune(c.R)
	}
}

func (t *Tokenizer) stepMarkupDeclarationOpen(hint Hint) {
	if t.stream.PeekSlice(2) == "--" {
		t.stream.Skip(2)
		t.openToken(CommentToken)
		t.state = CommentStart
		return
	}
	if strings.EqualFold(t.stream.PeekSlice(7), "DOCTYPE") {
		t.stream.Skip(7)
		t.state = DOCTYPE
		return
	}
	if t.stream.PeekSlice(7) == "[CDATA[" {
		t.stream.Skip(7)
		if hint.namespace() != HTMLNamespace {
			t.state = CDATASection
			return
		}
		t.logger.Add(t.lastTokenLoc, CDATAInHTMLContent)
		t.beginBogusComment("[CDATA[")
		return
	}
	t.logger.Add(t.lastTokenLoc, IncorrectlyOpenedComment)
	t.beginBogusComment("")
}

// ---- comment states --------------------------------------------------------

func (t *Tokenizer) stepCommentStart() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.state = CommentStartDash
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, AbruptClosingOfEmptyComment)
		t.emitCurrentToken()
		t.state = Data
	default:
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = Comment
	}
}

func (t *Tokenizer) stepCommentStartDash() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.state = CommentEnd
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, AbruptClosingOfEmptyComment)
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInComment)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.commentData.WriteByte('-')
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = Comment
	}
}

func (t *Tokenizer) stepComment() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '<':
		t.commentData.WriteRune('<')
		t.state = CommentLessThanSign
	case c.Kind == CharScalar && c.R == '-':
		t.commentDashLoc = loc
		t.state = CommentEndDash
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.commentData.WriteRune(replacementChar)
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInComment)
		t.emitCurrentToken()
		t.finishAtEOF()
	case c.Kind == CharScalar:
		t.commentData.WriteRune(c.R)
	case c.Kind == CharSurrogate:
		t.commentData.WriteRune(c.R)
	}
}

func (t *Tokenizer) stepCommentLessThanSign() {
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '!':
		t.commentData.WriteRune('!')
		t.state = CommentLessThanSignBang
	case c.Kind == CharScalar && c.R == '<':
		t.commentData.WriteRune('<')
	default:
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = Comment
	}
}

func (t *Tokenizer) stepCommentLessThanSignBang() {
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && c.R == '-' {
		t.state = CommentLessThanSignBangDash
		return
	}
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.state = Comment
}

func (t *Tokenizer) stepCommentLessThanSignBangDash() {
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && c.R == '-' {
		t.state = CommentLessThanSignBangDashDash
		return
	}
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.state = CommentEndDash
}

func (t *Tokenizer) stepCommentLessThanSignBangDashDash() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	if !(c.Kind == CharScalar && c.R == '>') && c.Kind != CharEOF {
		t.logger.Add(loc, NestedComment)
	}
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.state = CommentEnd
}

func (t *Tokenizer) stepCommentEndDash() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.state = CommentEnd
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInComment)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.commentData.WriteRune('-')
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = Comment
	}
}

func (t *Tokenizer) stepCommentEnd() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharScalar && c.R == '!':
		t.state = CommentEndBang
	case c.Kind == CharScalar && c.R == '-':
		t.commentData.WriteRune('-')
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInComment)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.logger.Add(t.commentDashLoc, NestedComment)
		t.commentData.WriteString("--")
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = Comment
	}
}

func (t *Tokenizer) stepCommentEndBang() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '-':
		t.commentData.WriteString("--!")
		t.state = CommentEndDash
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, IncorrectlyClosedComment)
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInComment)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.commentData.WriteString("--!")
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = Comment
	}
}

// ---- DOCTYPE states --------------------------------------------------------

func (t *Tokenizer) stepDOCTYPE() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.state = BeforeDOCTYPEName
	case c.Kind == CharScalar && c.R == '>':
		t.stream.UnreadOne()
		t.state = BeforeDOCTYPEName
	case c.Kind == CharEOF:
		t.openToken(DocTypeToken)
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.logger.Add(loc, MissingWhitespaceBeforeDoctypeName)
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BeforeDOCTYPEName
	}
}

func (t *Tokenizer) stepBeforeDOCTYPEName() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, MissingDoctypeName)
		t.openToken(DocTypeToken)
		t.current.ForceQuirks = true
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.openToken(DocTypeToken)
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	case c.Kind == CharSurrogate:
		t.openToken(DocTypeToken)
		t.nameBuf = append(t.nameBuf, c.R)
		t.state = DOCTYPEName
	default:
		t.openToken(DocTypeToken)
		t.appendTagNameRune(c.R)
		t.state = DOCTYPEName
	}
}

func (t *Tokenizer) stepDOCTYPEName() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.state = AfterDOCTYPEName
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	case c.Kind == CharSurrogate:
		t.nameBuf = append(t.nameBuf, c.R)
	default:
		t.appendTagNameRune(c.R)
	}
}

func (t *Tokenizer) stepAfterDOCTYPEName() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		if strings.EqualFold(t.stream.PeekSlice(6), "PUBLIC") {
			t.stream.Skip(6)
			t.state = AfterDOCTYPEPublicKeyword
			return
		}
		if strings.EqualFold(t.stream.PeekSlice(6), "SYSTEM") {
			t.stream.Skip(6)
			t.state = AfterDOCTYPESystemKeyword
			return
		}
		t.logger.Add(loc, InvalidCharacterSequenceAfterDoctypeName)
		t.current.ForceQuirks = true
		t.state = BogusDOCTYPE
	}
}

func (t *Tokenizer) stepAfterDOCTYPEPublicKeyword() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.state = BeforeDOCTYPEPublicIdentifier
	case c.Kind == CharScalar && c.R == '"':
		t.logger.Add(loc, MissingWhitespaceAfterDoctypePublicKeyword)
		t.havePublic = true
		t.doctypePublic.Reset()
		t.state = DOCTYPEPublicIdentifierDoubleQuoted
	case c.Kind == CharScalar && c.R == '\'':
		t.logger.Add(loc, MissingWhitespaceAfterDoctypePublicKeyword)
		t.havePublic = true
		t.doctypePublic.Reset()
		t.state = DOCTYPEPublicIdentifierSingleQuoted
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, MissingDoctypePublicIdentifier)
		t.current.ForceQuirks = true
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.logger.Add(loc, MissingQuoteBeforeDoctypePublicIdentifier)
		t.current.ForceQuirks = true
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BogusDOCTYPE
	}
}

func (t *Tokenizer) stepBeforeDOCTYPEPublicIdentifier() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && c.R == '"':
		t.havePublic = true
		t.doctypePublic.Reset()
		t.state = DOCTYPEPublicIdentifierDoubleQuoted
	case c.Kind == CharScalar && c.R == '\'':
		t.havePublic = true
		t.doctypePublic.Reset()
		t.state = DOCTYPEPublicIdentifierSingleQuoted
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, MissingDoctypePublicIdentifier)
		t.current.ForceQuirks = true
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.logger.Add(loc, MissingQuoteBeforeDoctypePublicIdentifier)
		t.current.ForceQuirks = true
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BogusDOCTYPE
	}
}

func (t *Tokenizer) stepDOCTYPEPublicIdentifierQuoted(quote rune) {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == quote:
		t.state = AfterDOCTYPEPublicIdentifier
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.doctypePublic.WriteRune(replacementChar)
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, AbruptDoctypePublicIdentifier)
		t.current.ForceQuirks = true
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	case c.Kind == CharScalar:
		t.doctypePublic.WriteRune(c.R)
	case c.Kind == CharSurrogate:
		t.doctypePublic.WriteRune(c.R)
	}
}

func (t *Tokenizer) stepAfterDOCTYPEPublicIdentifier() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.state = BetweenDOCTYPEPublicAndSystemIdentifiers
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharScalar && c.R == '"':
		t.logger.Add(loc, MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.haveSystem = true
		t.doctypeSystem.Reset()
		t.state = DOCTYPESystemIdentifierDoubleQuoted
	case c.Kind == CharScalar && c.R == '\'':
		t.logger.Add(loc, MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.haveSystem = true
		t.doctypeSystem.Reset()
		t.state = DOCTYPESystemIdentifierSingleQuoted
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.logger.Add(loc, MissingQuoteBeforeDoctypeSystemIdentifier)
		t.current.ForceQuirks = true
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BogusDOCTYPE
	}
}

func (t *Tokenizer) stepBetweenDOCTYPEPublicAndSystemIdentifiers() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharScalar && c.R == '"':
		t.haveSystem = true
		t.doctypeSystem.Reset()
		t.state = DOCTYPESystemIdentifierDoubleQuoted
	case c.Kind == CharScalar && c.R == '\'':
		t.haveSystem = true
		t.doctypeSystem.Reset()
		t.state = DOCTYPESystemIdentifierSingleQuoted
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.logger.Add(loc, MissingQuoteBeforeDoctypeSystemIdentifier)
		t.current.ForceQuirks = true
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BogusDOCTYPE
	}
}

func (t *Tokenizer) stepAfterDOCTYPESystemKeyword() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		t.state = BeforeDOCTYPESystemIdentifier
	case c.Kind == CharScalar && c.R == '"':
		t.logger.Add(loc, MissingWhitespaceAfterDoctypeSystemKeyword)
		t.haveSystem = true
		t.doctypeSystem.Reset()
		t.state = DOCTYPESystemIdentifierDoubleQuoted
	case c.Kind == CharScalar && c.R == '\'':
		t.logger.Add(loc, MissingWhitespaceAfterDoctypeSystemKeyword)
		t.haveSystem = true
		t.doctypeSystem.Reset()
		t.state = DOCTYPESystemIdentifierSingleQuoted
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, MissingDoctypeSystemIdentifier)
		t.current.ForceQuirks = true
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.logger.Add(loc, MissingQuoteBeforeDoctypeSystemIdentifier)
		t.current.ForceQuirks = true
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BogusDOCTYPE
	}
}

func (t *Tokenizer) stepBeforeDOCTYPESystemIdentifier() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && c.R == '"':
		t.haveSystem = true
		t.doctypeSystem.Reset()
		t.state = DOCTYPESystemIdentifierDoubleQuoted
	case c.Kind == CharScalar && c.R == '\'':
		t.haveSystem = true
		t.doctypeSystem.Reset()
		t.state = DOCTYPESystemIdentifierSingleQuoted
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, MissingDoctypeSystemIdentifier)
		t.current.ForceQuirks = true
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		t.logger.Add(loc, MissingQuoteBeforeDoctypeSystemIdentifier)
		t.current.ForceQuirks = true
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BogusDOCTYPE
	}
}

func (t *Tokenizer) stepDOCTYPESystemIdentifierQuoted(quote rune) {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == quote:
		t.state = AfterDOCTYPESystemIdentifier
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
		t.doctypeSystem.WriteRune(replacementChar)
	case c.Kind == CharScalar && c.R == '>':
		t.logger.Add(loc, AbruptDoctypeSystemIdentifier)
		t.current.ForceQuirks = true
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	case c.Kind == CharScalar:
		t.doctypeSystem.WriteRune(c.R)
	case c.Kind == CharSurrogate:
		t.doctypeSystem.WriteRune(c.R)
	}
}

func (t *Tokenizer) stepAfterDOCTYPESystemIdentifier() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && isWhitespace(c.R):
		// ignore
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharEOF:
		t.current.ForceQuirks = true
		t.logger.Add(loc, EOFInDoctype)
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		// Per the algorithm this does not set force-quirks.
		t.logger.Add(loc, UnexpectedCharacterAfterDoctypeSystemIdentifier)
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = BogusDOCTYPE
	}
}

func (t *Tokenizer) stepBogusDOCTYPE() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == '>':
		t.emitCurrentToken()
		t.state = Data
	case c.Kind == CharScalar && c.R == 0:
		t.logger.Add(loc, UnexpectedNullCharacter)
	case c.Kind == CharEOF:
		t.emitCurrentToken()
		t.finishAtEOF()
	default:
		// ignore
	}
}

// ---- CDATA section ----------------------------------------------------------

func (t *Tokenizer) stepCDATASection() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == ']':
		t.state = CDATASectionBracket
	case c.Kind == CharEOF:
		t.logger.Add(loc, EOFInCDATA)
		t.finishAtEOF()
	case c.Kind == CharScalar:
		t.appendChar(c.R, loc)
	case c.Kind == CharSurrogate:
		t.appendChar(c.R, loc)
	}
}

func (t *Tokenizer) stepCDATASectionBracket() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	if c.Kind == CharScalar && c.R == ']' {
		t.state = CDATASectionEnd
		return
	}
	t.appendChar(']', loc)
	if c.Kind != CharEOF {
		t.stream.UnreadOne()
	}
	t.state = CDATASection
}

func (t *Tokenizer) stepCDATASectionEnd() {
	loc := t.stream.CurrentLocation()
	c := t.stream.ReadAndAdvance(t.logger)
	switch {
	case c.Kind == CharScalar && c.R == ']':
		t.appendChar(']', loc)
	case c.Kind == CharScalar && c.R == '>':
		t.state = Data
	default:
		t.appendLiteral("]]", loc)
		if c.Kind != CharEOF {
			t.stream.UnreadOne()
		}
		t.state = CDATASection
	}
}
