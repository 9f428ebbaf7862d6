package html5

import "github.com/google/triemap"

// nameInterner caches tag and attribute names built up scalar-by-scalar by
// the state machine, so that a document with thousands of repeated tags
// (<div>, <p>, <span>, ...) shares one string allocation per distinct name
// instead of allocating afresh on every occurrence. Grounded on
// Goodwine-go-xml's decoder, which interns rune-built element/attribute
// names the same way via d.names.Get/d.names.Put.
type nameInterner struct {
	seen triemap.RuneSliceMap[string]
}

func newNameInterner() *nameInterner {
	return &nameInterner{}
}

// Intern returns a shared string for runes, lowercasing has already been
// applied by the caller while runes was being built up.
func (n *nameInterner) Intern(runes []rune) string {
	if len(runes) == 0 {
		return ""
	}
	if s, ok := n.seen.Get(runes); ok {
		return s
	}
	s := string(runes)
	n.seen.Put(runes, s)
	return s
}
