// Package parser provides PDN lexing and parsing for draughts game files.
package parser

// TokenType is the kind of a token handed to the parser.
type TokenType int

const (
	EOFToken TokenType = iota
	TagToken
	StringToken
	CommentToken
	NAGToken
	MoveNumber
	RAVStart
	RAVEnd
	MoveToken
	TerminatingResult

	// NoToken marks input that produced nothing, such as whitespace.
	NoToken
)

var tokenTypeNames = [...]string{
	EOFToken:          "EOF",
	TagToken:          "TAG",
	StringToken:       "STRING",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	MoveNumber:        "MOVE_NUMBER",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	MoveToken:         "MOVE",
	TerminatingResult: "TERMINATING_RESULT",
	NoToken:           "NO_TOKEN",
}

func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token is one lexical token. TokenString carries the text of tags,
// strings, comments, moves, results and NAGs.
type Token struct {
	Type        TokenType
	TokenString string
	MoveNum     uint
	Line        uint
}

// Results a PDN game may end with: White wins, Black wins, draw, unknown.
const (
	ResultWhiteWins = "2-0"
	ResultBlackWins = "0-2"
	ResultDraw      = "1-1"
	ResultUnknown   = "*"
)

// charClass groups input bytes by how the lexer treats them.
type charClass uint8

const (
	classOther charClass = iota
	classSpace
	classTagOpen
	classTagClose
	classQuote
	classCommentOpen
	classCommentClose
	classLineComment
	classNAG
	classAnnotation
	classDot
	classRAVOpen
	classRAVClose
	classEscapeLine
	classBackslash
	classDigit
	classLetter
	classStar
	classNul
)

var classes = func() (t [256]charClass) {
	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		t[c] = classSpace
	}
	t['['] = classTagOpen
	t[']'] = classTagClose
	t['"'] = classQuote
	t['{'] = classCommentOpen
	t['}'] = classCommentClose
	t[';'] = classLineComment
	t['$'] = classNAG
	t['!'] = classAnnotation
	t['?'] = classAnnotation
	t['.'] = classDot
	t['('] = classRAVOpen
	t[')'] = classRAVClose
	t['%'] = classEscapeLine
	t['\\'] = classBackslash
	t['*'] = classStar
	t[0] = classNul
	for c := byte('0'); c <= '9'; c++ {
		t[c] = classDigit
	}
	for c := byte('a'); c <= 'z'; c++ {
		t[c] = classLetter
		t[c-'a'+'A'] = classLetter
	}
	t['_'] = classLetter
	return t
}()
