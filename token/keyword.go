package token

import "strconv"

// Keyword is the closed set of reserved identifier spellings. A user
// identifier that doesn't match any of these resolves to KeywordUnknown.
type Keyword uint8

const (
	KeywordUnknown Keyword = iota
	KeywordIf
	KeywordElse
	KeywordFor
	KeywordWhile
	KeywordDo
	KeywordSwitch
	KeywordCase
	KeywordDefault
	KeywordBreak
	KeywordContinue
	KeywordReturn
	KeywordConst
	KeywordStatic
	KeywordTemplate
	KeywordClass
	KeywordStruct
	KeywordEnum
	KeywordUnion
	KeywordPublic
	KeywordPrivate
	KeywordProtected
	KeywordVirtual
	KeywordInline
	KeywordUsing
	KeywordNamespace
	KeywordVolatile
	KeywordMutable
	KeywordExtern
	KeywordFriend
	KeywordNew
	KeywordDelete
	KeywordTrue
	KeywordFalse
	KeywordNil
	KeywordTypedef
	KeywordAuto
	KeywordDecltype
	KeywordConstexpr
	KeywordConsteval
	KeywordStaticAssert
	KeywordSizeof
	KeywordLua
)

var keywordNames = [...]string{
	KeywordUnknown:      "Unknown",
	KeywordIf:           "if",
	KeywordElse:         "else",
	KeywordFor:          "for",
	KeywordWhile:        "while",
	KeywordDo:           "do",
	KeywordSwitch:       "switch",
	KeywordCase:         "case",
	KeywordDefault:      "default",
	KeywordBreak:        "break",
	KeywordContinue:     "continue",
	KeywordReturn:       "return",
	KeywordConst:        "const",
	KeywordStatic:       "static",
	KeywordTemplate:     "template",
	KeywordClass:        "class",
	KeywordStruct:       "struct",
	KeywordEnum:         "enum",
	KeywordUnion:        "union",
	KeywordPublic:       "public",
	KeywordPrivate:      "private",
	KeywordProtected:    "protected",
	KeywordVirtual:      "virtual",
	KeywordInline:       "inline",
	KeywordUsing:        "using",
	KeywordNamespace:    "namespace",
	KeywordVolatile:     "volatile",
	KeywordMutable:      "mutable",
	KeywordExtern:       "extern",
	KeywordFriend:       "friend",
	KeywordNew:          "new",
	KeywordDelete:       "delete",
	KeywordTrue:         "true",
	KeywordFalse:        "false",
	KeywordNil:          "nullptr",
	KeywordTypedef:      "typedef",
	KeywordAuto:         "auto",
	KeywordDecltype:     "decltype",
	KeywordConstexpr:    "constexpr",
	KeywordConsteval:    "consteval",
	KeywordStaticAssert: "static_assert",
	KeywordSizeof:       "sizeof",
	KeywordLua:          "Lua",
}

func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return "Keyword(" + strconv.Itoa(int(k)) + ")"
}

var keywords map[string]Keyword

func init() {
	keywords = make(map[string]Keyword, len(keywordNames)-1)
	for k := KeywordIf; k <= KeywordLua; k++ {
		keywords[keywordNames[k]] = k
	}
}

// LookupKeyword returns the keyword tag for spelling, or KeywordUnknown if
// spelling is not a reserved word.
func LookupKeyword(spelling string) Keyword {
	if k, ok := keywords[spelling]; ok {
		return k
	}
	return KeywordUnknown
}
