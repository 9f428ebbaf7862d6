package html5_test

import (
	"fmt"

	"github.com/BrowserJam/jam001/html5"
)

// drain pulls tokens until (and including) Eof.
func drain(tok *html5.Tokenizer, hint html5.Hint) []html5.Token {
	var toks []html5.Token
	for {
		tk, err := tok.NextToken(hint)
		if err != nil {
			panic(err)
		}
		toks = append(toks, tk)
		if tk.Type == html5.EOFToken {
			return toks
		}
	}
}

func printTokens(toks []html5.Token) {
	for _, tk := range toks {
		switch tk.Type {
		case html5.StartTagToken:
			fmt.Printf("StartTag name=%q attrs=%v self_closing=%v\n", tk.Name, tk.Attr, tk.SelfClosing)
		case html5.EndTagToken:
			fmt.Printf("EndTag name=%q\n", tk.Name)
		case html5.TextToken:
			fmt.Printf("Text %q\n", tk.Data)
		case html5.CommentToken:
			fmt.Printf("Comment %q\n", tk.Data)
		case html5.DocTypeToken:
			fmt.Printf("DocType name=%q public=%v system=%v force_quirks=%v\n",
				tk.Name, tk.PublicID, tk.SystemID, tk.ForceQuirks)
		case html5.EOFToken:
			fmt.Println("Eof")
		}
	}
}

func printErrors(tok *html5.Tokenizer) {
	errs := tok.Errors()
	if len(errs) == 0 {
		fmt.Println("errors: none")
		return
	}
	for _, e := range errs {
		fmt.Println("error:", e)
	}
}

func ExampleTokenizer_startAndEndTag() {
	s := html5.NewStreamFromString("<p>Hi</p>", html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, html5.NewErrorLogger())

	printTokens(drain(tok, html5.Hint{}))
	printErrors(tok)
	// Output:
	// StartTag name="p" attrs=map[] self_closing=false
	// Text "Hi"
	// EndTag name="p"
	// Eof
	// errors: none
}

func ExampleTokenizer_attributesWithAndWithoutValue() {
	s := html5.NewStreamFromString("<p class=foo disabled>x</p>", html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, html5.NewErrorLogger())

	printTokens(drain(tok, html5.Hint{}))
	printErrors(tok)
	// Output:
	// StartTag name="p" attrs=map[class:foo disabled:] self_closing=false
	// Text "x"
	// EndTag name="p"
	// Eof
	// errors: none
}

func ExampleTokenizer_nestedComment() {
	s := html5.NewStreamFromString("<!-- a -- b -->", html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, html5.NewErrorLogger())

	printTokens(drain(tok, html5.Hint{}))
	printErrors(tok)
	// Output:
	// Comment " a -- b "
	// Eof
	// error: nested-comment at 1:8
}

func ExampleTokenizer_doctype() {
	s := html5.NewStreamFromString("<!DOCTYPE html>", html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, html5.NewErrorLogger())

	printTokens(drain(tok, html5.Hint{}))
	printErrors(tok)
	// Output:
	// DocType name="html" public=<nil> system=<nil> force_quirks=false
	// Eof
	// errors: none
}

func ExampleTokenizer_namedCharacterReferenceInAttribute() {
	s := html5.NewStreamFromString(`<a href="x?a=1&amp;b=2">L</a>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, html5.NewErrorLogger())

	printTokens(drain(tok, html5.Hint{}))
	printErrors(tok)
	// Output:
	// StartTag name="a" attrs=map[href:x?a=1&b=2] self_closing=false
	// Text "L"
	// EndTag name="a"
	// Eof
	// errors: none
}

// ExampleTokenizer_scriptDataAppropriateEndTag picks up where the
// embedding parser leaves off after it has already consumed "<script>"
// from Data, emitted the StartTag itself, and switched the tokenizer
// into ScriptData with last_start_tag "script" (spec.md §4.4).
func ExampleTokenizer_scriptDataAppropriateEndTag() {
	s := html5.NewStreamFromString("a<b</script>c", html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{InitialState: html5.ScriptData, LastStartTag: "script"}, html5.NewErrorLogger())

	printTokens(drain(tok, html5.Hint{}))
	printErrors(tok)
	// Output:
	// Text "a<b"
	// EndTag name="script"
	// Text "c"
	// Eof
	// errors: none
}

func ExampleTokenizer_tagClosedCleanlyBeforeEOF() {
	s := html5.NewStreamFromString("<p>", html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, html5.NewErrorLogger())

	printTokens(drain(tok, html5.Hint{}))
	printErrors(tok)
	// Output:
	// StartTag name="p" attrs=map[] self_closing=false
	// Eof
	// errors: none
}

func ExampleTokenizer_lessThanAtEOF() {
	s := html5.NewStreamFromString("<", html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, html5.NewErrorLogger())

	printTokens(drain(tok, html5.Hint{}))
	printErrors(tok)
	// Output:
	// Text "<"
	// Eof
	// error: eof-before-tag-name at 1:1
}
