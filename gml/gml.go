package gml

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BiocomputeLab/mctools/core"
)

var (
	// ErrSyntax marks malformed GML text; the wrapping error carries the
	// line number.
	ErrSyntax = errors.New("gml: syntax error")

	// ErrMissingID marks a node block that declares no id key.
	ErrMissingID = errors.New("gml: node block without id")

	// ErrUnknownNode marks an edge whose source or target id was never
	// declared by a node block.
	ErrUnknownNode = errors.New("gml: edge references undeclared node")
)

// tokenKind discriminates lexer output.
type tokenKind int

const (
	tokEOF tokenKind = iota
	tokWord          // bare key or number
	tokString
	tokOpen
	tokClose
)

type token struct {
	kind tokenKind
	text string
	line int
}

// lexer splits GML text into words, quoted strings, and brackets,
// tracking line numbers for error reporting. '#' starts a comment that
// runs to end of line.
type lexer struct {
	r    *bufio.Reader
	line int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r), line: 1}
}

func (l *lexer) next() (token, error) {
	for {
		b, err := l.r.ReadByte()
		if err == io.EOF {
			return token{kind: tokEOF, line: l.line}, nil
		}
		if err != nil {
			return token{}, fmt.Errorf("gml: read: %w", err)
		}

		switch {
		case b == '\n':
			l.line++

		case b == ' ' || b == '\t' || b == '\r':
			// skip

		case b == '#':
			if err := l.skipLine(); err != nil {
				return token{}, err
			}

		case b == '[':
			return token{kind: tokOpen, text: "[", line: l.line}, nil

		case b == ']':
			return token{kind: tokClose, text: "]", line: l.line}, nil

		case b == '"':
			return l.lexString()

		default:
			return l.lexWord(b)
		}
	}
}

func (l *lexer) skipLine() error {
	_, err := l.r.ReadString('\n')
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("gml: read: %w", err)
	}
	l.line++

	return nil
}

func (l *lexer) lexString() (token, error) {
	start := l.line
	var sb strings.Builder
	for {
		b, err := l.r.ReadByte()
		if err == io.EOF {
			return token{}, fmt.Errorf("gml: line %d: unterminated string: %w", start, ErrSyntax)
		}
		if err != nil {
			return token{}, fmt.Errorf("gml: read: %w", err)
		}
		if b == '"' {
			return token{kind: tokString, text: sb.String(), line: start}, nil
		}
		if b == '\n' {
			l.line++
		}
		sb.WriteByte(b)
	}
}

func (l *lexer) lexWord(first byte) (token, error) {
	start := l.line
	var sb strings.Builder
	sb.WriteByte(first)
	for {
		b, err := l.r.ReadByte()
		if err == io.EOF {
			return token{kind: tokWord, text: sb.String(), line: start}, nil
		}
		if err != nil {
			return token{}, fmt.Errorf("gml: read: %w", err)
		}
		if b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '[' || b == ']' || b == '#' || b == '"' {
			if err := l.r.UnreadByte(); err != nil {
				return token{}, fmt.Errorf("gml: read: %w", err)
			}

			return token{kind: tokWord, text: sb.String(), line: start}, nil
		}
		sb.WriteByte(b)
	}
}

// rawEdge is an edge as declared in the file, before node IDs resolve.
type rawEdge struct {
	source, target int
	line           int
}

// parser consumes the token stream of one GML document.
type parser struct {
	lex *lexer

	directed bool
	order    []int       // declared GML ids, first-appearance order
	dense    map[int]int // GML id → dense node ID
	edges    []rawEdge
}

// Parse reads a GML document and builds its graph. The second return
// value maps dense node IDs back to the ids declared in the file
// (index = dense ID); edges may reference nodes declared later.
func Parse(r io.Reader) (*core.Graph, []int, error) {
	p := &parser{lex: newLexer(r), dense: make(map[int]int)}
	if err := p.document(); err != nil {
		return nil, nil, err
	}

	g := core.New(len(p.order), core.WithDirected(p.directed))
	for _, e := range p.edges {
		u, ok := p.dense[e.source]
		if !ok {
			return nil, nil, fmt.Errorf("gml: line %d: source %d: %w", e.line, e.source, ErrUnknownNode)
		}
		v, ok := p.dense[e.target]
		if !ok {
			return nil, nil, fmt.Errorf("gml: line %d: target %d: %w", e.line, e.target, ErrUnknownNode)
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, nil, err
		}
	}

	return g, p.order, nil
}

// document scans top-level key/value pairs until the first graph block.
func (p *parser) document() error {
	for {
		tok, err := p.lex.next()
		if err != nil {
			return err
		}
		switch tok.kind {
		case tokEOF:
			return fmt.Errorf("gml: no graph block: %w", ErrSyntax)

		case tokWord:
			if tok.text == "graph" {
				return p.graphBlock()
			}
			if err := p.skipValue(); err != nil {
				return err
			}

		default:
			return unexpected(tok)
		}
	}
}

func (p *parser) graphBlock() error {
	if err := p.expectOpen(); err != nil {
		return err
	}
	for {
		tok, err := p.lex.next()
		if err != nil {
			return err
		}
		switch {
		case tok.kind == tokClose:
			return nil

		case tok.kind != tokWord:
			return unexpected(tok)

		case tok.text == "directed":
			v, err := p.intValue()
			if err != nil {
				return err
			}
			p.directed = v != 0

		case tok.text == "node":
			if err := p.nodeBlock(); err != nil {
				return err
			}

		case tok.text == "edge":
			if err := p.edgeBlock(); err != nil {
				return err
			}

		default:
			if err := p.skipValue(); err != nil {
				return err
			}
		}
	}
}

func (p *parser) nodeBlock() error {
	if err := p.expectOpen(); err != nil {
		return err
	}
	id, haveID := 0, false
	for {
		tok, err := p.lex.next()
		if err != nil {
			return err
		}
		switch {
		case tok.kind == tokClose:
			if !haveID {
				return fmt.Errorf("gml: line %d: %w", tok.line, ErrMissingID)
			}
			if _, dup := p.dense[id]; !dup {
				p.dense[id] = len(p.order)
				p.order = append(p.order, id)
			}

			return nil

		case tok.kind != tokWord:
			return unexpected(tok)

		case tok.text == "id":
			if id, err = p.intValue(); err != nil {
				return err
			}
			haveID = true

		default:
			if err := p.skipValue(); err != nil {
				return err
			}
		}
	}
}

func (p *parser) edgeBlock() error {
	if err := p.expectOpen(); err != nil {
		return err
	}
	e := rawEdge{source: -1, target: -1}
	for {
		tok, err := p.lex.next()
		if err != nil {
			return err
		}
		switch {
		case tok.kind == tokClose:
			if e.source < 0 || e.target < 0 {
				return fmt.Errorf("gml: line %d: edge block without source/target: %w", tok.line, ErrSyntax)
			}
			e.line = tok.line
			p.edges = append(p.edges, e)

			return nil

		case tok.kind != tokWord:
			return unexpected(tok)

		case tok.text == "source":
			if e.source, err = p.intValue(); err != nil {
				return err
			}

		case tok.text == "target":
			if e.target, err = p.intValue(); err != nil {
				return err
			}

		default:
			if err := p.skipValue(); err != nil {
				return err
			}
		}
	}
}

// intValue reads one integer value token.
func (p *parser) intValue() (int, error) {
	tok, err := p.lex.next()
	if err != nil {
		return 0, err
	}
	if tok.kind != tokWord {
		return 0, unexpected(tok)
	}
	n, err := strconv.Atoi(tok.text)
	if err != nil {
		return 0, fmt.Errorf("gml: line %d: %q is not an integer: %w", tok.line, tok.text, ErrSyntax)
	}

	return n, nil
}

// skipValue discards the value following an unrecognized key: a single
// word or string, or a whole bracketed block with nesting.
func (p *parser) skipValue() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	switch tok.kind {
	case tokWord, tokString:
		return nil

	case tokOpen:
		depth := 1
		for depth > 0 {
			tok, err := p.lex.next()
			if err != nil {
				return err
			}
			switch tok.kind {
			case tokOpen:
				depth++
			case tokClose:
				depth--
			case tokEOF:
				return fmt.Errorf("gml: line %d: unterminated block: %w", tok.line, ErrSyntax)
			}
		}

		return nil

	default:
		return unexpected(tok)
	}
}

func (p *parser) expectOpen() error {
	tok, err := p.lex.next()
	if err != nil {
		return err
	}
	if tok.kind != tokOpen {
		return unexpected(tok)
	}

	return nil
}

func unexpected(tok token) error {
	what := tok.text
	if tok.kind == tokEOF {
		what = "end of input"
	}

	return fmt.Errorf("gml: line %d: unexpected %s: %w", tok.line, what, ErrSyntax)
}
