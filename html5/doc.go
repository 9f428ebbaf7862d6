// Package html5 implements the first stage of an HTML parser: a tokenizer
// that turns a stream of Unicode scalar values into a stream of syntactic
// tokens (doctype, start tag, end tag, comment, text, end-of-file), per the
// WHATWG HTML tokenization algorithm (https://html.spec.whatwg.org/multipage/parsing.html#tokenization).
//
// The package has no opinion about tree construction, DOM, CSS, rendering
// or script execution: it hands tokens to an embedding parser and exposes a
// narrow set of hooks that parser needs (the appropriate-end-tag test, the
// adjusted-current-node-is-in-the-HTML-namespace test, and a way to inject
// tokens back into the stream).
package html5
