// Package script is the reference implementation of pkg/interfaces.Evaluator
// for the one expression grammar spec.md §4.2-§4.4 needs: an identifier
// naming a content field, followed by zero or more `.method(args)` calls
// chained onto the result. It is built the way the teacher builds its own
// small text-scanning parsers (internal/shortcode/parser/hugo.go's manual,
// regexp-driven tokenizer), repurposed here for this grammar instead of
// Hugo shortcode tags.
package script

import (
	"github.com/goliatone/supermd/pkg/interfaces"
)

// Evaluator is the reference pkg/interfaces.Evaluator implementation.
type Evaluator struct{}

// New returns a ready-to-use Evaluator. It carries no state.
func New() *Evaluator {
	return &Evaluator{}
}

var _ interfaces.Evaluator = (*Evaluator)(nil)

// Eval tokenizes and evaluates expr against root, short-circuiting on the
// first err Value either a builtin or the grammar itself produces.
func (e *Evaluator) Eval(expr string, root interfaces.Value) interfaces.Value {
	p := &parser{lex: newLexer(expr)}
	if err := p.advance(); err != nil {
		return interfaces.Err(err)
	}
	if p.tok.kind == tokEOF {
		return interfaces.Err(ErrEmptyExpression)
	}

	if p.tok.kind != tokIdent {
		return interfaces.Err(ErrExpectedIdent)
	}
	name := p.tok.text
	if err := p.advance(); err != nil {
		return interfaces.Err(err)
	}

	value := interfaces.FieldOf(root, name)
	if value.IsErr() {
		return value
	}

	for p.tok.kind == tokDot {
		if err := p.advance(); err != nil {
			return interfaces.Err(err)
		}
		if p.tok.kind != tokIdent {
			return interfaces.Err(ErrExpectedIdent)
		}
		method := p.tok.text
		if err := p.advance(); err != nil {
			return interfaces.Err(err)
		}
		if p.tok.kind != tokLParen {
			return interfaces.Err(ErrExpectedLParen)
		}
		if err := p.advance(); err != nil {
			return interfaces.Err(err)
		}

		args, err := p.parseArgs()
		if err != nil {
			return interfaces.Err(err)
		}

		value = interfaces.CallOf(value, method, args)
		if value.IsErr() {
			return value
		}
	}

	if p.tok.kind != tokEOF {
		return interfaces.Err(ErrTrailingInput)
	}
	return value
}

// parser holds one token of lookahead over the lexer, enough for this
// grammar's LL(1) shape.
type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// parseArgs consumes a comma-separated argument list up to and including
// the closing ')'. The opening '(' has already been consumed by the
// caller.
func (p *parser) parseArgs() ([]interfaces.Value, error) {
	var args []interfaces.Value

	if p.tok.kind == tokRParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		return args, nil
	}

	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		switch p.tok.kind {
		case tokComma:
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokRParen:
			if err := p.advance(); err != nil {
				return nil, err
			}
			return args, nil
		default:
			return nil, ErrExpectedCommaOrRParen
		}
	}
}

func (p *parser) parseArg() (interfaces.Value, error) {
	switch p.tok.kind {
	case tokString:
		v := interfaces.Str(p.tok.text)
		return v, p.advance()
	case tokInt:
		v := interfaces.Int(p.tok.ival)
		return v, p.advance()
	case tokIdent:
		switch p.tok.text {
		case "true":
			v := interfaces.Bool(true)
			return v, p.advance()
		case "false":
			v := interfaces.Bool(false)
			return v, p.advance()
		}
		return interfaces.Value{}, ErrExpectedArgOrRParen
	default:
		return interfaces.Value{}, ErrExpectedArgOrRParen
	}
}
