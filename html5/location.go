package html5

// Location identifies a position in the decoded scalar stream that fed the
// tokenizer. It is attached to every token and every parse error, and is
// cheap to copy.
type Location struct {
	Line   uint32
	Column uint32
	Offset uint32
}

// Before reports whether l occurred strictly before o in the stream.
func (l Location) Before(o Location) bool {
	return l.Offset < o.Offset
}
