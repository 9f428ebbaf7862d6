package html5

import "golang.org/x/net/html/atom"

// ElementKind classifies a start tag's name by which tokenizer state the
// embedding parser should switch into next, per the spec's "Last-start-tag
// override" handshake (§4.4): after emitting a StartTag, the parser sets
// the tokenizer's state and last-start-tag name itself; LookupElementKind
// is a convenience the parser can use to decide which state that is. The
// tokenizer's own state machine never calls this — it is purely a helper
// for the caller, grounded on how golang.org/x/net/html's parser
// classifies RCDATA/RAWTEXT/script elements by atom rather than by string
// comparison.
type ElementKind int

const (
	// KindNormal elements keep the tokenizer in Data.
	KindNormal ElementKind = iota
	// KindRCDATA elements (title, textarea) switch the tokenizer to RCDATA.
	KindRCDATA
	// KindRAWTEXT elements (style, xmp, iframe, noembed, noframes) switch
	// the tokenizer to RAWTEXT.
	KindRAWTEXT
	// KindScriptData is the script element, which switches to ScriptData.
	KindScriptData
	// KindPLAINTEXT is the plaintext element, which switches to PLAINTEXT
	// and can never be exited.
	KindPLAINTEXT
)

// LookupElementKind reports how the tokenizer should continue after a
// start tag named tagName, using golang.org/x/net/html/atom for an
// allocation-free, case-normalized lookup. ok is false for any name atom
// does not recognize as one of these special elements (the overwhelming
// majority of tags), in which case the parser should leave the tokenizer
// in Data.
func LookupElementKind(tagName string) (kind ElementKind, ok bool) {
	b := []byte(tagName)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + 0x20
		}
	}
	switch atom.Lookup(b) {
	case atom.Title, atom.Textarea:
		return KindRCDATA, true
	case atom.Style, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes:
		return KindRAWTEXT, true
	case atom.Script:
		return KindScriptData, true
	case atom.Noscript:
		// Only RAWTEXT when scripting is enabled; this package treats the
		// scripting flag as permanently disabled (spec.md Non-goals), so
		// noscript content tokenizes as ordinary Data.
		return KindNormal, false
	case atom.Plaintext:
		return KindPLAINTEXT, true
	default:
		return KindNormal, false
	}
}
