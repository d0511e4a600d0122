// Package parser reads the type expressions and signatures used by program
// descriptions and the command line:
//
//	union     := primary ('|' primary)*
//	primary   := 'self' | path [ '(' union (',' union)* ')' ] [ '+' ]
//	path      := ['::'] IDENT ('::' IDENT)*
//	signature := '(' [ param (',' param)* ] ')'
//	param     := '_' | name | name ':' union | union
//
// Type names start with an upper case letter, parameter names with a lower
// case one.
package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/cottand/overload/frontend/ast"
	"github.com/cottand/overload/frontend/ilerr"
	"github.com/cottand/overload/frontend/types"
	"github.com/cottand/overload/internal/log"
)

var parserLogger = log.DefaultLogger.With("section", "program.parser")

// ParseTerm parses a single type expression
func ParseTerm(src string) (*Term, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	t, err := p.union()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseRestriction parses a type expression into the unresolved node a
// method signature holds
func ParseRestriction(src string) (types.Node, error) {
	t, err := ParseTerm(src)
	if err != nil {
		return nil, err
	}
	return t.Restriction()
}

// ParseParams parses a parenthesised parameter list such as (x : Int, _, Foo)
func ParseParams(src string) ([]Param, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	params, err := p.params()
	if err != nil {
		return nil, err
	}
	if err := p.expect(tokEOF); err != nil {
		return nil, err
	}
	parserLogger.Debug("parsed signature", "src", src, "params", len(params))
	return params, nil
}

// ParseSignature parses src as the parameter list of the method name,
// keeping every restriction unresolved
func ParseSignature(name, src string) (*types.Def, error) {
	params, err := ParseParams(src)
	if err != nil {
		return nil, err
	}
	def := &types.Def{Name: name, Args: make([]types.Arg, 0, len(params))}
	for _, param := range params {
		arg := types.Arg{Name: param.Name}
		if param.Term != nil {
			if arg.Restriction, err = param.Term.Restriction(); err != nil {
				return nil, err
			}
		}
		def.Args = append(def.Args, arg)
	}
	return def, nil
}

type parser struct {
	tokens []token
	pos    int
}

func newParser(src string) (*parser, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &parser{tokens: tokens}, nil
}

func (p *parser) peek() token { return p.tokens[p.pos] }

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) accept(kind tokenKind) bool {
	if p.peek().kind == kind {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(kind tokenKind) error {
	tok := p.peek()
	if tok.kind != kind {
		return p.unexpected(tok, kind.String())
	}
	p.next()
	return nil
}

func (p *parser) unexpected(tok token, wanted string) error {
	found := tok.kind.String()
	if tok.kind == tokIdent {
		found = fmt.Sprintf("'%s'", tok.text)
	}
	return ilerr.New(ilerr.NewSyntax{
		Positioner:    tok.Range,
		ParserMessage: fmt.Sprintf("expected %s, found %s", wanted, found),
	})
}

func (p *parser) union() (*Term, error) {
	first, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokPipe {
		return first, nil
	}
	union := &Term{Alts: []*Term{first}}
	for p.accept(tokPipe) {
		alt, err := p.primary()
		if err != nil {
			return nil, err
		}
		union.Alts = append(union.Alts, alt)
	}
	union.Range = ast.RangeBetween(first, union.Alts[len(union.Alts)-1])
	return union, nil
}

func (p *parser) primary() (*Term, error) {
	start := p.peek()
	if start.kind == tokIdent && start.text == "self" {
		p.next()
		return &Term{Self: true, Range: start.Range}, nil
	}

	t := &Term{Global: p.accept(tokScope)}
	for {
		tok := p.peek()
		if tok.kind != tokIdent || !isTypeName(tok.text) {
			return nil, p.unexpected(tok, "a type name")
		}
		p.next()
		t.Names = append(t.Names, tok.text)
		if !p.accept(tokScope) {
			break
		}
	}

	if p.accept(tokLParen) {
		for {
			arg, err := p.union()
			if err != nil {
				return nil, err
			}
			t.Args = append(t.Args, arg)
			if !p.accept(tokComma) {
				break
			}
		}
		if err := p.expect(tokRParen); err != nil {
			return nil, err
		}
	}
	t.Cone = p.accept(tokPlus)
	t.Range = ast.Range{PosStart: start.Pos(), PosEnd: p.tokens[p.pos-1].End()}
	return t, nil
}

func (p *parser) params() ([]Param, error) {
	if err := p.expect(tokLParen); err != nil {
		return nil, err
	}
	if p.accept(tokRParen) {
		return nil, nil
	}
	var params []Param
	for {
		param, err := p.param()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.accept(tokComma) {
			break
		}
	}
	if err := p.expect(tokRParen); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *parser) param() (Param, error) {
	tok := p.peek()
	if tok.kind == tokUnderscore {
		p.next()
		return Param{Range: tok.Range}, nil
	}
	if tok.kind == tokIdent && tok.text != "self" && !isTypeName(tok.text) {
		p.next()
		param := Param{Name: tok.text, Range: tok.Range}
		if !p.accept(tokColon) {
			return param, nil
		}
		term, err := p.union()
		if err != nil {
			return Param{}, err
		}
		param.Term = term
		param.Range = ast.RangeBetween(tok, term)
		return param, nil
	}
	term, err := p.union()
	if err != nil {
		return Param{}, err
	}
	return Param{Term: term, Range: term.Range}, nil
}

func isTypeName(name string) bool {
	r, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(r)
}
