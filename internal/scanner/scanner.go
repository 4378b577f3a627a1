package scanner

import (
	"strconv"

	"github.com/leonardinius/lispcalc/internal/calcerrors"
	"github.com/leonardinius/lispcalc/internal/token"
)

// Scanner turns source text into tokens.
type Scanner interface {
	Scan() ([]token.Token, error)
}

var singleCharTokens = map[rune]token.TokenType{
	'(': token.LEFT_PAREN,
	')': token.RIGHT_PAREN,
	'+': token.PLUS,
	'-': token.MINUS,
	' ': token.SPACE,
}

type scanner struct {
	source               []rune
	tokens               []token.Token
	start, current, line int
	err                  error
}

// NewScanner returns a new Scanner.
func NewScanner(input string) Scanner {
	return &scanner{source: []rune(input), start: 0, current: 0, line: 1}
}

// Scan implements Scanner.
// On error the tokens scanned so far are discarded.
func (s *scanner) Scan() ([]token.Token, error) {
	for !s.isDone() {
		// We are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}

	if s.hasErr() {
		return nil, s.err
	}

	s.tokens = append(s.tokens, token.NewToken(token.EOF, "", s.line, s.current+1))

	return s.tokens, nil
}

func (s *scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *scanner) hasErr() bool {
	return s.err != nil
}

func (s *scanner) isDone() bool {
	return s.isAtEnd() || s.hasErr()
}

func (s *scanner) scanToken() {
	c := s.advance()

	if t, ok := singleCharTokens[c]; ok {
		s.addToken(t)
		return
	}

	if s.isDigit(c) {
		s.number()
		return
	}

	s.reportUnexpectedCharacter(c)
}

func (s *scanner) peek() rune {
	if s.isAtEnd() {
		return '\000'
	}
	return s.source[s.current]
}

func (s *scanner) advance() rune {
	s.current++
	return s.source[s.current-1]
}

func (s *scanner) addToken(t token.TokenType) {
	s.tokens = append(s.tokens, token.NewToken(t, string(s.source[s.start:s.current]), s.line, s.start+1))
}

func (s *scanner) number() {
	for s.isDigit(s.peek()) {
		s.advance()
	}

	s.addToken(token.NUMBER)
}

func (s *scanner) isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func (s *scanner) reportUnexpectedCharacter(c rune) {
	s.err = calcerrors.NewScanError(s.line, s.start+1, calcerrors.ErrScanUnexpectedCharacter, strconv.QuoteRune(c))
}

var _ Scanner = (*scanner)(nil)
