package html5

import "strconv"

const maxNamedReferenceLen = 32 // longest WHATWG named reference, "CounterClockwiseContourIntegral;"

// resolveCharacterReference implements the four-context character reference
// resolver from spec.md §4.3. It assumes the leading '&' has already been
// consumed by the caller. inAttribute and (hasAdditional, additional)
// mirror the "in-attribute flag" and "additional allowed character"
// inputs: for the three attribute-value contexts, additional is the quote
// character (or, for unquoted values, '>') that ends the reference early.
func resolveCharacterReference(s *Stream, logger *ErrorLogger, inAttribute bool, hasAdditional bool, additional rune) string {
	c := s.ReadAndAdvance(logger)
	switch {
	case c.Kind == CharScalar && hasAdditional && c.R == additional:
		s.UnreadOne()
		return "&"
	case c.Kind == CharScalar && c.R == '#':
		return resolveNumericReference(s, logger)
	case c.Kind == CharScalar && isASCIIAlphanumeric(c.R):
		s.UnreadOne()
		return resolveNamedReference(s, logger, inAttribute)
	default:
		if c.Kind == CharScalar {
			s.UnreadOne()
		}
		return "&"
	}
}

func resolveNamedReference(s *Stream, logger *ErrorLogger, inAttribute bool) string {
	var buf []rune
	for len(buf) < maxNamedReferenceLen {
		c := s.ReadAndAdvance(logger)
		if c.Kind != CharScalar {
			break
		}
		if !isASCIIAlphanumeric(c.R) && c.R != ';' {
			s.UnreadOne()
			break
		}
		buf = append(buf, c.R)
		if c.R == ';' {
			break
		}
	}

	for l := len(buf); l > 0; l-- {
		cand := string(buf[:l])
		repl, ok := namedCharRefs[cand]
		if !ok {
			continue
		}
		for i := len(buf) - 1; i >= l; i-- {
			s.UnreadOne()
		}
		endsInSemicolon := cand[len(cand)-1] == ';'
		if !endsInSemicolon {
			next := peekAfterMatch(s, logger)
			if inAttribute && (next == '=' || isASCIIAlphanumeric(next)) {
				return "&" + cand
			}
			logger.Add(s.CurrentLocation(), MissingSemicolonAfterCharacterReference)
		}
		return repl
	}

	if len(buf) > 0 && buf[len(buf)-1] == ';' {
		logger.Add(s.CurrentLocation(), UnknownNamedCharacterReference)
	}
	return "&" + string(buf)
}

func peekAfterMatch(s *Stream, logger *ErrorLogger) rune {
	c := s.ReadAndAdvance(logger)
	if c.Kind != CharScalar {
		return 0
	}
	s.UnreadOne()
	return c.R
}

func resolveNumericReference(s *Stream, logger *ErrorLogger) string {
	isHex := false
	prefix := "&#"
	c := s.ReadAndAdvance(logger)
	if c.Kind == CharScalar && (c.R == 'x' || c.R == 'X') {
		isHex = true
		prefix += string(c.R)
	} else if c.Kind == CharScalar {
		s.UnreadOne()
	}

	digitsLoc := s.CurrentLocation()
	var digits []rune
	for {
		c := s.ReadAndAdvance(logger)
		if c.Kind != CharScalar {
			break
		}
		if isHex && isHexDigit(c.R) || !isHex && isASCIIDigit(c.R) {
			digits = append(digits, c.R)
			continue
		}
		s.UnreadOne()
		break
	}

	if len(digits) == 0 {
		logger.Add(digitsLoc, AbsenceOfDigitsInNumericCharacterReference)
		return prefix
	}

	base := 10
	if isHex {
		base = 16
	}
	val, err := strconv.ParseUint(string(digits), base, 64)
	if err != nil || val > 0x10FFFF {
		val = 0x110000 // treat overflow as out-of-range
	}

	after := s.CurrentLocation()
	c = s.ReadAndAdvance(logger)
	if c.Kind == CharScalar && c.R == ';' {
		// consumed
	} else {
		if c.Kind == CharScalar {
			s.UnreadOne()
		}
		logger.Add(after, MissingSemicolonAfterCharacterReference)
	}

	return string(numericReferenceCodePoint(uint32(val), logger, digitsLoc))
}

// numericReferenceCodePoint applies the WHATWG numeric-reference
// transformations: NUL, out-of-range, surrogate and noncharacter code
// points are flagged; CR and the C0/C1 controls other than TAB, LF and FF
// are flagged and, for the historical 0x80-0x9F range, remapped via the
// Windows-1252 derived replacement table.
func numericReferenceCodePoint(n uint32, logger *ErrorLogger, loc Location) rune {
	switch {
	case n == 0:
		logger.Add(loc, NullCharacterReference)
		return replacementChar
	case n > 0x10FFFF:
		logger.Add(loc, CharacterReferenceOutsideUnicodeRange)
		return replacementChar
	case isSurrogate(rune(n)):
		logger.Add(loc, SurrogateCharacterReference)
		return replacementChar
	case isNoncharacter(rune(n)):
		logger.Add(loc, NoncharacterCharacterReference)
	}

	if n == 0x0D || (isControlCodePoint(n) && n != 0x09 && n != 0x0A && n != 0x0C) {
		logger.Add(loc, ControlCharacterReference)
		if repl, ok := c1ControlReplacements[n]; ok {
			return repl
		}
	}
	return rune(n)
}

func isControlCodePoint(n uint32) bool {
	return n <= 0x1F || (n >= 0x7F && n <= 0x9F)
}

func isASCIIAlpha(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r)
}

func isHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// c1ControlReplacements is the Windows-1252-derived table the WHATWG spec
// uses to remap legacy numeric references in the 0x80-0x9F range.
var c1ControlReplacements = map[uint32]rune{
	0x80: 0x20AC, 0x82: 0x201A, 0x83: 0x0192, 0x84: 0x201E,
	0x85: 0x2026, 0x86: 0x2020, 0x87: 0x2021, 0x88: 0x02C6,
	0x89: 0x2030, 0x8A: 0x0160, 0x8B: 0x2039, 0x8C: 0x0152,
	0x8E: 0x017D, 0x91: 0x2018, 0x92: 0x2019, 0x93: 0x201C,
	0x94: 0x201D, 0x95: 0x2022, 0x96: 0x2013, 0x97: 0x2014,
	0x98: 0x02DC, 0x99: 0x2122, 0x9A: 0x0161, 0x9B: 0x203A,
	0x9C: 0x0153, 0x9E: 0x017E, 0x9F: 0x0178,
}
