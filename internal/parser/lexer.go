package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/checkers-go/internal/checkers"
	"github.com/lgbarn/checkers-go/internal/config"
)

// numSquares is the highest square number a move may name.
const numSquares = checkers.BoardSize * checkers.BoardSize / 2

// Lexer tokenizes PDN input a line at a time.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  uint
	ravLevel uint
	cfg      *config.Config
}

// NewLexer creates a lexer reading r. A nil cfg gets the defaults.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// LineNumber returns the number of the line being read.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.line)
}

func (l *Lexer) peek() charClass {
	if l.atEnd() {
		return classNul
	}
	return classes[l.line[l.pos]]
}

// skip advances over bytes of the given classes.
func (l *Lexer) skip(cs ...charClass) {
	for !l.atEnd() {
		c := l.peek()
		found := false
		for _, want := range cs {
			if c == want {
				found = true
				break
			}
		}
		if !found {
			return
		}
		l.pos++
	}
}

func (l *Lexer) warnf(format string, args ...interface{}) {
	l.cfg.Logf(1, format, args...)
}

// NextToken returns the next token, EOFToken once the input is exhausted.
func (l *Lexer) NextToken() *Token {
	for {
		if l.atEnd() && !l.readLine() {
			return &Token{Type: EOFToken, Line: l.lineNum}
		}
		if tok := l.scan(); tok.Type != NoToken {
			tok.Line = l.lineNum
			return tok
		}
	}
}

// scan reads one symbol from the current line.
func (l *Lexer) scan() *Token {
	start := l.pos
	ch := l.line[l.pos]
	l.pos++

	switch classes[ch] {
	case classSpace, classTagClose, classNul:
		l.skip(classSpace)

	case classTagOpen:
		return l.gatherTag()

	case classQuote:
		return l.gatherString()

	case classCommentOpen:
		return l.gatherComment()

	case classLineComment:
		text := strings.TrimSpace(l.line[l.pos:])
		l.pos = len(l.line)
		return &Token{Type: CommentToken, TokenString: text}

	case classCommentClose:
		l.warnf("Unmatched comment end on line %d.\n", l.lineNum)

	case classNAG:
		l.skip(classDigit)
		return &Token{Type: NAGToken, TokenString: l.line[start:l.pos]}

	case classAnnotation:
		l.skip(classAnnotation)
		return &Token{Type: NAGToken, TokenString: annotationToNAG(l.line[start:l.pos])}

	case classDot:
		l.skip(classDot)

	case classRAVOpen:
		l.ravLevel++
		return &Token{Type: RAVStart}

	case classRAVClose:
		if l.ravLevel > 0 {
			l.ravLevel--
			return &Token{Type: RAVEnd}
		}
		l.warnf("Too many ')' found on line %d.\n", l.lineNum)

	case classEscapeLine:
		l.pos = len(l.line)

	case classBackslash:
		if !l.atEnd() {
			l.pos++
		}

	case classDigit:
		return l.gatherNumeric(start)

	case classStar:
		return &Token{Type: TerminatingResult, TokenString: ResultUnknown}

	case classLetter:
		l.skip(classLetter, classDigit)
		l.warnf("Unknown move text %s on line %d.\n", l.line[start:l.pos], l.lineNum)

	default:
		l.warnf("Unknown character %c (0x%x) on line %d.\n", ch, ch, l.lineNum)
		l.skip(classOther)
	}
	return &Token{Type: NoToken}
}

// gatherTag reads the tag name following '['.
func (l *Lexer) gatherTag() *Token {
	l.skip(classSpace)
	start := l.pos
	l.skip(classLetter, classDigit)
	if l.pos == start {
		return &Token{Type: NoToken}
	}
	return &Token{Type: TagToken, TokenString: l.line[start:l.pos]}
}

// gatherString reads a quoted tag value; backslash escapes the next byte.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	for !l.atEnd() {
		ch := l.line[l.pos]
		l.pos++
		switch {
		case ch == '\\' && !l.atEnd():
			sb.WriteByte(l.line[l.pos])
			l.pos++
		case ch == '"':
			return &Token{Type: StringToken, TokenString: sb.String()}
		default:
			sb.WriteByte(ch)
		}
	}
	l.warnf("Missing closing quote on line %d.\n", l.lineNum)
	return &Token{Type: StringToken, TokenString: sb.String()}
}

// gatherComment reads a brace comment, which may span lines.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder
	for {
		if end := strings.IndexByte(l.line[l.pos:], '}'); end >= 0 {
			sb.WriteString(l.line[l.pos : l.pos+end])
			l.pos += end + 1
			return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
		}
		sb.WriteString(l.line[l.pos:])
		l.pos = len(l.line)
		if !l.readLine() {
			break
		}
	}
	l.warnf("Missing end of comment.\n")
	return &Token{Type: CommentToken, TokenString: strings.TrimSpace(sb.String())}
}

// gatherNumeric reads what starts with a digit: a move such as 22-18 or
// 25x18x11, a result such as 2-0, or a move number with its dots.
func (l *Lexer) gatherNumeric(start int) *Token {
	l.skip(classDigit)

	separated := false
	for l.pos+1 < len(l.line) && isSeparator(l.line[l.pos]) && classes[l.line[l.pos+1]] == classDigit {
		l.pos++
		l.skip(classDigit)
		separated = true
	}
	text := l.line[start:l.pos]

	if !separated {
		l.skip(classDot)
		n, _ := strconv.ParseUint(text, 10, 32)
		return &Token{Type: MoveNumber, MoveNum: uint(n)}
	}

	switch text {
	case ResultWhiteWins, ResultBlackWins, ResultDraw:
		return &Token{Type: TerminatingResult, TokenString: text}
	}
	if !moveSeemsValid(text) {
		l.warnf("Unknown move text %s on line %d.\n", text, l.lineNum)
		return &Token{Type: NoToken}
	}
	return &Token{Type: MoveToken, TokenString: text}
}

// isSeparator reports whether c separates squares in move text.
func isSeparator(c byte) bool {
	return c == '-' || c == 'x' || c == 'X'
}

// moveSeemsValid checks that text names at least two squares, all on the
// board.
func moveSeemsValid(text string) bool {
	squares := strings.FieldsFunc(text, func(r rune) bool { return r < 128 && isSeparator(byte(r)) })
	if len(squares) < 2 {
		return false
	}
	for _, s := range squares {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > numSquares {
			return false
		}
	}
	return true
}

// annotationToNAG maps move annotation symbols to their NAG numbers.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	}
	return "$0"
}
