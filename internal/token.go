package internal

// tokenType identifies the lexical class of a token.
type tokenType int

const (
	tkEOF tokenType = iota

	// Literals.
	tkNumber
	tkString
	tkTrue
	tkFalse
	tkNull

	// Identifiers.
	tkIdentifier

	// Keywords.
	tkSay
	tkLet
	tkBe
	tkDefine
	tkWith
	tkCall
	tkIf
	tkThen
	tkElse
	tkWhile
	tkDo
	tkFor
	tkEach
	tkIn
	tkTry
	tkCatch
	tkThrow
	tkReturn
	tkImport
	tkStop
	tkNew

	// Operator words.
	tkAnd
	tkOr
	tkNot
	tkGreater
	tkLess
	tkEquals
	tkThan

	// Multi-word comparisons, folded into single tokens by the lexer.
	tkGreaterThan
	tkGreaterEqual
	tkLessThan
	tkLessEqual
	tkNotEquals
	tkForEach

	// Punctuation / operators.
	tkPlus
	tkMinus
	tkStar
	tkSlash
	tkLeftParen
	tkRightParen
	tkLeftBracket
	tkRightBracket
	tkLeftBrace
	tkRightBrace
	tkComma
	tkColon
	tkDot
	tkAssign

	// Structural.
	tkNewline
	tkIndent
	tkDedent
)

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkNumber:       "NUMBER",
	tkString:       "STRING",
	tkTrue:         "TRUE",
	tkFalse:        "FALSE",
	tkNull:         "NULL",
	tkIdentifier:   "IDENTIFIER",
	tkSay:          "Say",
	tkLet:          "Let",
	tkBe:           "be",
	tkDefine:       "Define",
	tkWith:         "with",
	tkCall:         "Call",
	tkIf:           "If",
	tkThen:         "Then",
	tkElse:         "Else",
	tkWhile:        "While",
	tkDo:           "Do",
	tkFor:          "For",
	tkEach:         "Each",
	tkIn:           "In",
	tkTry:          "Try",
	tkCatch:        "Catch",
	tkThrow:        "Throw",
	tkReturn:       "Return",
	tkImport:       "Import",
	tkStop:         "Stop",
	tkNew:          "New",
	tkAnd:          "and",
	tkOr:           "or",
	tkNot:          "not",
	tkGreater:      "greater",
	tkLess:         "less",
	tkEquals:       "equals",
	tkThan:         "than",
	tkGreaterThan:  "greater than",
	tkGreaterEqual: "greater equal",
	tkLessThan:     "less than",
	tkLessEqual:    "less equal",
	tkNotEquals:    "not equals",
	tkForEach:      "For each",
	tkPlus:         "+",
	tkMinus:        "-",
	tkStar:         "*",
	tkSlash:        "/",
	tkLeftParen:    "(",
	tkRightParen:   ")",
	tkLeftBracket:  "[",
	tkRightBracket: "]",
	tkLeftBrace:    "{",
	tkRightBrace:   "}",
	tkComma:        ",",
	tkColon:        ":",
	tkDot:          ".",
	tkAssign:       "=",
	tkNewline:      "NEWLINE",
	tkIndent:       "INDENT",
	tkDedent:       "DEDENT",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// keywords maps the lowercased lexeme of a keyword to its token type.
// Identifiers that are not in this table lex as tkIdentifier and remain
// case-sensitive.
var keywords = map[string]tokenType{
	"say":     tkSay,
	"let":     tkLet,
	"be":      tkBe,
	"define":  tkDefine,
	"with":    tkWith,
	"call":    tkCall,
	"if":      tkIf,
	"then":    tkThen,
	"else":    tkElse,
	"while":   tkWhile,
	"do":      tkDo,
	"for":     tkFor,
	"each":    tkEach,
	"in":      tkIn,
	"try":     tkTry,
	"catch":   tkCatch,
	"throw":   tkThrow,
	"return":  tkReturn,
	"import":  tkImport,
	"stop":    tkStop,
	"new":     tkNew,
	"and":     tkAnd,
	"or":      tkOr,
	"not":     tkNot,
	"greater": tkGreater,
	"less":    tkLess,
	"equals":  tkEquals,
	"than":    tkThan,
	"true":    tkTrue,
	"false":   tkFalse,
	"null":    tkNull,
}

// token carries a kind tag, the source lexeme, an optional literal value
// and the 1-based line number it was lexed from.
type token struct {
	kind    tokenType
	lexeme  string
	literal interface{}
	line    int
}

func (t *token) String() string {
	return t.lexeme
}
