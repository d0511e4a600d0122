package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/cottand/overload/frontend/ast"
	"github.com/cottand/overload/frontend/ilerr"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokScope // ::
	tokColon
	tokLParen
	tokRParen
	tokComma
	tokPipe
	tokPlus
	tokUnderscore
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokIdent:
		return "identifier"
	case tokScope:
		return "'::'"
	case tokColon:
		return "':'"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokComma:
		return "','"
	case tokPipe:
		return "'|'"
	case tokPlus:
		return "'+'"
	case tokUnderscore:
		return "'_'"
	default:
		return "invalid token"
	}
}

type token struct {
	kind tokenKind
	text string
	ast.Range
}

func lex(src string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		start := i
		emit := func(kind tokenKind, length int) {
			tokens = append(tokens, token{kind: kind, text: src[start : start+length], Range: ast.Range{PosStart: start, PosEnd: start + length}})
			i += length
		}

		switch {
		case unicode.IsSpace(r):
			i += size
		case r == ':' && i+1 < len(src) && src[i+1] == ':':
			emit(tokScope, 2)
		case r == ':':
			emit(tokColon, 1)
		case r == '(':
			emit(tokLParen, 1)
		case r == ')':
			emit(tokRParen, 1)
		case r == ',':
			emit(tokComma, 1)
		case r == '|':
			emit(tokPipe, 1)
		case r == '+':
			emit(tokPlus, 1)
		case r == '_' && !continuesIdent(src[i+1:]):
			emit(tokUnderscore, 1)
		case r == '_' || unicode.IsLetter(r):
			end := i + size
			for end < len(src) {
				next, nextSize := utf8.DecodeRuneInString(src[end:])
				if !isIdentRune(next) {
					break
				}
				end += nextSize
			}
			emit(tokIdent, end-i)
		default:
			return nil, ilerr.New(ilerr.NewSyntax{
				Positioner:    ast.Range{PosStart: i, PosEnd: i + size},
				ParserMessage: fmt.Sprintf("unexpected character %q", r),
			})
		}
	}
	tokens = append(tokens, token{kind: tokEOF, Range: ast.Range{PosStart: len(src), PosEnd: len(src)}})
	return tokens, nil
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func continuesIdent(rest string) bool {
	if rest == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return isIdentRune(r)
}
