package html5_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/BrowserJam/jam001/html5"
)

func collect(t *testing.T, tok *html5.Tokenizer) []html5.Token {
	t.Helper()
	var out []html5.Token
	for {
		tk, err := tok.NextToken(html5.Hint{})
		require.NoError(t, err)
		out = append(out, tk)
		if tk.Type == html5.EOFToken {
			return out
		}
	}
}

func newTokenizer(src string) *html5.Tokenizer {
	s := html5.NewStreamFromString(src, html5.Location{Line: 1, Column: 1})
	return html5.New(s, html5.Options{}, html5.NewErrorLogger())
}

func TestTokenizer_SimpleStartAndEndTag(t *testing.T) {
	tok := newTokenizer("<p>hi</p>")
	toks := collect(t, tok)

	want := []html5.TokenType{
		html5.StartTagToken, html5.TextToken, html5.EndTagToken, html5.EOFToken,
	}
	var got []html5.TokenType
	for _, tk := range toks {
		got = append(got, tk.Type)
	}
	require.Equal(t, want, got)
	require.Equal(t, "p", toks[0].Name)
	require.Equal(t, "hi", toks[1].Data)
	require.Equal(t, "p", toks[2].Name)
}

func TestTokenizer_Attributes(t *testing.T) {
	tok := newTokenizer(`<a href="x" class='y' disabled>`)
	toks := collect(t, tok)
	require.Equal(t, html5.StartTagToken, toks[0].Type)
	if diff := cmp.Diff(map[string]string{"href": "x", "class": "y", "disabled": ""}, toks[0].Attr); diff != "" {
		t.Fatalf("attr mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizer_DuplicateAttributeIsDiscardedAndLogged(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`<a x="1" x="2">`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, "1", tk.Attr["x"])

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.DuplicateAttribute {
			found = true
		}
	}
	require.True(t, found, "expected a duplicate-attribute parse error")
}

func TestTokenizer_EndTagWithAttributesIsLogged(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`</p class="x">`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk.Type)
	require.Nil(t, tk.Attr)

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.EndTagWithAttributes {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_EndTagWithAttributesLocatesFirstDiscardedAttribute(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`</p class="x" id="y">`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk.Type)

	var got *html5.ParseError
	for _, e := range logger.Snapshot() {
		if e.Code == html5.EndTagWithAttributes {
			e := e
			got = &e
		}
	}
	require.NotNil(t, got)
	require.Equal(t, html5.Location{Line: 1, Column: 5, Offset: 4}, got.Location)
}

func TestTokenizer_SelfClosingStartTag(t *testing.T) {
	tok := newTokenizer(`<br/>`)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.True(t, tk.SelfClosing)
}

func TestTokenizer_EndTagTrailingSolidusLogsErrorButNotSelfClosing(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`</p/>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk.Type)
	require.False(t, tk.SelfClosing)

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.EndTagWithTrailingSolidus {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_EndTagTrailingSolidusLocatesTheSolidus(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`</p/>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk.Type)

	errs := logger.Snapshot()
	require.Len(t, errs, 1)
	require.Equal(t, html5.EndTagWithTrailingSolidus, errs[0].Code)
	require.Equal(t, html5.Location{Line: 1, Column: 4, Offset: 3}, errs[0].Location)
}

func TestTokenizer_EndTagTrailingSolidusAfterAttributeLocatesTheSolidus(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`</p a/>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk.Type)

	var got *html5.ParseError
	for _, e := range logger.Snapshot() {
		if e.Code == html5.EndTagWithTrailingSolidus {
			e := e
			got = &e
		}
	}
	require.NotNil(t, got)
	require.Equal(t, html5.Location{Line: 1, Column: 6, Offset: 5}, got.Location)
}

func TestTokenizer_Comment(t *testing.T) {
	tok := newTokenizer(`<!-- hello -->`)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.CommentToken, tk.Type)
	require.Equal(t, " hello ", tk.Data)
}

func TestTokenizer_NestedCommentDashDashIsFlagged(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`<!-- a -- b -->`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.CommentToken, tk.Type)
	require.Equal(t, " a -- b ", tk.Data)

	errs := logger.Snapshot()
	require.Len(t, errs, 1)
	require.Equal(t, html5.NestedComment, errs[0].Code)
	require.Equal(t, html5.Location{Line: 1, Column: 8, Offset: 7}, errs[0].Location)
}

func TestTokenizer_BogusCommentOnUnknownDeclaration(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`<!weird>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.CommentToken, tk.Type)
	require.Equal(t, "weird", tk.Data)

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.IncorrectlyOpenedComment {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_Doctype(t *testing.T) {
	tok := newTokenizer(`<!DOCTYPE html>`)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.DocTypeToken, tk.Type)
	require.Equal(t, "html", tk.Name)
	require.False(t, tk.ForceQuirks)
	require.Nil(t, tk.PublicID)
	require.Nil(t, tk.SystemID)
}

func TestTokenizer_DoctypeWithPublicAndSystemIdentifiers(t *testing.T) {
	tok := newTokenizer(`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.DocTypeToken, tk.Type)
	require.NotNil(t, tk.PublicID)
	require.Equal(t, "-//W3C//DTD HTML 4.01//EN", *tk.PublicID)
	require.NotNil(t, tk.SystemID)
	require.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", *tk.SystemID)
}

// TestTokenizer_AfterDoctypeSystemIdentifierDoesNotForceQuirks documents
// an asymmetry in the doctype tail states: unlike most doctype error
// paths, trailing garbage after the system identifier logs a parse error
// and falls into BogusDOCTYPE without setting force_quirks, and
// BogusDOCTYPE itself never sets it either.
func TestTokenizer_AfterDoctypeSystemIdentifierDoesNotForceQuirks(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`<!DOCTYPE html SYSTEM "foo" bogus>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.DocTypeToken, tk.Type)
	require.False(t, tk.ForceQuirks)
	require.NotNil(t, tk.SystemID)
	require.Equal(t, "foo", *tk.SystemID)

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.UnexpectedCharacterAfterDoctypeSystemIdentifier {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_MissingDoctypeNameForcesQuirks(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`<!DOCTYPE >`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.True(t, tk.ForceQuirks)

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.MissingDoctypeName {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_CharacterReferenceNamed(t *testing.T) {
	tok := newTokenizer(`a&amp;b`)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.TextToken, tk.Type)
	require.Equal(t, "a&b", tk.Data)
}

func TestTokenizer_CharacterReferenceNumericDecimal(t *testing.T) {
	tok := newTokenizer(`&#65;`)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, "A", tk.Data)
}

func TestTokenizer_CharacterReferenceNumericHex(t *testing.T) {
	tok := newTokenizer(`&#x41;`)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, "A", tk.Data)
}

func TestTokenizer_CharacterReferenceNullIsReplaced(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`&#0;`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, "�", tk.Data)

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.NullCharacterReference {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_AmbiguousAmpersandInAttributeIsLiteral(t *testing.T) {
	tok := newTokenizer(`<a href="?a=1&b=2">`)
	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, "?a=1&b=2", tk.Attr["href"])
}

func TestTokenizer_RCDATARespectsAppropriateEndTag(t *testing.T) {
	s := html5.NewStreamFromString(`title content</title>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{InitialState: html5.RCDATA, LastStartTag: "title"}, html5.NewErrorLogger())

	tk1, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.TextToken, tk1.Type)
	require.Equal(t, "title content", tk1.Data)

	tk2, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk2.Type)
	require.Equal(t, "title", tk2.Name)
}

func TestTokenizer_RCDATAMismatchedEndTagIsLiteralText(t *testing.T) {
	s := html5.NewStreamFromString(`</div>done</title>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{InitialState: html5.RCDATA, LastStartTag: "title"}, html5.NewErrorLogger())

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.TextToken, tk.Type)
	require.Equal(t, "</div>done", tk.Data)

	tk2, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk2.Type)
	require.Equal(t, "title", tk2.Name)
}

func TestTokenizer_ScriptDataEscaped(t *testing.T) {
	s := html5.NewStreamFromString(`a<!--b-->c</script>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{InitialState: html5.ScriptData, LastStartTag: "script"}, html5.NewErrorLogger())

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.TextToken, tk.Type)
	require.Equal(t, "a<!--b-->c", tk.Data)

	tk2, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk2.Type)
	require.Equal(t, "script", tk2.Name)
}

// TestTokenizer_ScriptDataDoubleEscapeRoundTrips exercises the full
// ScriptDataDoubleEscapeStart/Escaped(Dash)(DashDash)/LessThanSign/End
// family: a "<script>" tag appearing inside an already-escaped
// "<!--"-opened comment switches into the double-escaped submode, and a
// "</script>" appearing inside that submode switches back to (singly)
// escaped instead of closing the tag.
func TestTokenizer_ScriptDataDoubleEscapeRoundTrips(t *testing.T) {
	s := html5.NewStreamFromString(`<!--a<script>b</script>c--></script>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{InitialState: html5.ScriptData, LastStartTag: "script"}, html5.NewErrorLogger())

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.TextToken, tk.Type)
	require.Equal(t, `<!--a<script>b</script>c-->`, tk.Data)

	tk2, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EndTagToken, tk2.Type)
	require.Equal(t, "script", tk2.Name)
}

func TestTokenizer_CDATASectionOutsideHTMLNamespace(t *testing.T) {
	s := html5.NewStreamFromString(`<![CDATA[ raw & unparsed ]]>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, html5.NewErrorLogger())

	tk, err := tok.NextToken(tokHintForeign())
	require.NoError(t, err)
	require.Equal(t, html5.TextToken, tk.Type)
	require.Equal(t, " raw & unparsed ", tk.Data)
}

func tokHintForeign() html5.Hint {
	return html5.Hint{AdjustedNodeNamespace: "http://www.w3.org/2000/svg"}
}

func TestTokenizer_CDATAInHTMLNamespaceIsBogusComment(t *testing.T) {
	logger := html5.NewErrorLogger()
	s := html5.NewStreamFromString(`<![CDATA[x]]>`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{}, logger)

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.CommentToken, tk.Type)
	require.Equal(t, "[CDATA[x]]", tk.Data)

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.CDATAInHTMLContent {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_EOFMidTagReturnsSameEOFRepeatedly(t *testing.T) {
	s := html5.NewStreamFromString(`<div`, html5.Location{Line: 1, Column: 1})
	logger := html5.NewErrorLogger()
	tok := html5.New(s, html5.Options{}, logger)

	tk1, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, html5.EOFToken, tk1.Type)

	tk2, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, tk1, tk2)

	var found bool
	for _, e := range logger.Snapshot() {
		if e.Code == html5.EOFInTag {
			found = true
		}
	}
	require.True(t, found)
}

func TestTokenizer_MaxTokenBytesIsFatal(t *testing.T) {
	s := html5.NewStreamFromString(`<!--`+string(make([]byte, 100))+`-->`, html5.Location{Line: 1, Column: 1})
	tok := html5.New(s, html5.Options{MaxTokenBytes: 10}, html5.NewErrorLogger())

	_, err := tok.NextToken(html5.Hint{})
	require.Error(t, err)

	var streamErr *html5.StreamError
	require.True(t, errors.As(err, &streamErr))
	require.True(t, errors.Is(err, html5.ErrTokenTooLarge))
}

func TestTokenizer_PushFrontReinjectsTokens(t *testing.T) {
	tok := newTokenizer(`x`)
	synth := html5.Token{Type: html5.StartTagToken, Name: "synthetic"}
	tok.PushFront([]html5.Token{synth})

	tk, err := tok.NextToken(html5.Hint{})
	require.NoError(t, err)
	require.Equal(t, "synthetic", tk.Name)
}
