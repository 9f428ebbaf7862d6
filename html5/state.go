package html5

// State names one of the tokenizer's states. Names match the spec's
// glossary one-to-one so conformance fixtures can name an initial state by
// string and have it resolve unambiguously.
type State int

const (
	Data State = iota
	RCDATA
	RAWTEXT
	ScriptData
	PLAINTEXT
	TagOpen
	EndTagOpen
	TagName
	RCDATALessThanSign
	RCDATAEndTagOpen
	RCDATAEndTagName
	RAWTEXTLessThanSign
	RAWTEXTEndTagOpen
	RAWTEXTEndTagName
	ScriptDataLessThanSign
	ScriptDataEndTagOpen
	ScriptDataEndTagName
	ScriptDataEscapeStart
	ScriptDataEscapeStartDash
	ScriptDataEscaped
	ScriptDataEscapedDash
	ScriptDataEscapedDashDash
	ScriptDataEscapedLessThanSign
	ScriptDataEscapedEndTagOpen
	ScriptDataEscapedEndTagName
	ScriptDataDoubleEscapeStart
	ScriptDataDoubleEscaped
	ScriptDataDoubleEscapedDash
	ScriptDataDoubleEscapedDashDash
	ScriptDataDoubleEscapedLessThanSign
	ScriptDataDoubleEscapeEnd
	BeforeAttributeName
	AttributeName
	AfterAttributeName
	BeforeAttributeValue
	AttributeValueDoubleQuoted
	AttributeValueSingleQuoted
	AttributeValueUnquoted
	AfterAttributeValueQuoted
	SelfClosingStart
	BogusComment
	MarkupDeclarationOpen
	CommentStart
	CommentStartDash
	Comment
	CommentLessThanSign
	CommentLessThanSignBang
	CommentLessThanSignBangDash
	CommentLessThanSignBangDashDash
	CommentEndDash
	CommentEnd
	CommentEndBang
	DOCTYPE
	BeforeDOCTYPEName
	DOCTYPEName
	AfterDOCTYPEName
	AfterDOCTYPEPublicKeyword
	BeforeDOCTYPEPublicIdentifier
	DOCTYPEPublicIdentifierDoubleQuoted
	DOCTYPEPublicIdentifierSingleQuoted
	AfterDOCTYPEPublicIdentifier
	BetweenDOCTYPEPublicAndSystemIdentifiers
	AfterDOCTYPESystemKeyword
	BeforeDOCTYPESystemIdentifier
	DOCTYPESystemIdentifierDoubleQuoted
	DOCTYPESystemIdentifierSingleQuoted
	AfterDOCTYPESystemIdentifier
	BogusDOCTYPE
	CDATASection
	CDATASectionBracket
	CDATASectionEnd
	CharacterReferenceInData
	CharacterReferenceInRcData

	stateEOF // internal sentinel: the session is over, always emit EOF
)

var stateNames = [...]string{
	"Data", "RCDATA", "RAWTEXT", "ScriptData", "PLAINTEXT", "TagOpen",
	"EndTagOpen", "TagName", "RCDATALessThanSign", "RCDATAEndTagOpen",
	"RCDATAEndTagName", "RAWTEXTLessThanSign", "RAWTEXTEndTagOpen",
	"RAWTEXTEndTagName", "ScriptDataLessThanSign", "ScriptDataEndTagOpen",
	"ScriptDataEndTagName", "ScriptDataEscapeStart", "ScriptDataEscapeStartDash",
	"ScriptDataEscaped", "ScriptDataEscapedDash", "ScriptDataEscapedDashDash",
	"ScriptDataEscapedLessThanSign", "ScriptDataEscapedEndTagOpen",
	"ScriptDataEscapedEndTagName", "ScriptDataDoubleEscapeStart",
	"ScriptDataDoubleEscaped", "ScriptDataDoubleEscapedDash",
	"ScriptDataDoubleEscapedDashDash", "ScriptDataDoubleEscapedLessThanSign",
	"ScriptDataDoubleEscapeEnd", "BeforeAttributeName", "AttributeName",
	"AfterAttributeName", "BeforeAttributeValue", "AttributeValueDoubleQuoted",
	"AttributeValueSingleQuoted", "AttributeValueUnquoted",
	"AfterAttributeValueQuoted", "SelfClosingStart", "BogusComment",
	"MarkupDeclarationOpen", "CommentStart", "CommentStartDash", "Comment",
	"CommentLessThanSign", "CommentLessThanSignBang", "CommentLessThanSignBangDash",
	"CommentLessThanSignBangDashDash", "CommentEndDash", "CommentEnd",
	"CommentEndBang", "DOCTYPE", "BeforeDOCTYPEName", "DOCTYPEName",
	"AfterDOCTYPEName", "AfterDOCTYPEPublicKeyword", "BeforeDOCTYPEPublicIdentifier",
	"DOCTYPEPublicIdentifierDoubleQuoted", "DOCTYPEPublicIdentifierSingleQuoted",
	"AfterDOCTYPEPublicIdentifier", "BetweenDOCTYPEPublicAndSystemIdentifiers",
	"AfterDOCTYPESystemKeyword", "BeforeDOCTYPESystemIdentifier",
	"DOCTYPESystemIdentifierDoubleQuoted", "DOCTYPESystemIdentifierSingleQuoted",
	"AfterDOCTYPESystemIdentifier", "BogusDOCTYPE", "CDATASection",
	"CDATASectionBracket", "CDATASectionEnd", "CharacterReferenceInData",
	"CharacterReferenceInRcData", "eof",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
