package fixpoint

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type NodeKind int

const (
	NodeNumber NodeKind = iota
	NodeBool
	NodeSymbol
	NodeList
)

type Node struct {
	Kind     NodeKind
	Int      int64
	Bool     bool
	Str      string
	Children []*Node
}

func (n *Node) String() string {
	switch n.Kind {
	case NodeNumber:
		return strconv.FormatInt(n.Int, 10)
	case NodeBool:
		if n.Bool {
			return "#t"
		}
		return "#f"
	case NodeSymbol:
		return n.Str
	case NodeList:
		parts := make([]string, len(n.Children))
		for i, c := range n.Children {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, " ") + ")"
	default:
		return "<unknown>"
	}
}

type parser struct {
	input []rune
	pos   int
}

// Parse reads exactly one expression from the input.
func Parse(input string) (*Node, error) {
	p := &parser{input: []rune(input), pos: 0}
	p.skipWhitespace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("empty input")
	}
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected input after expression at position %d", p.pos)
	}
	return node, nil
}

// ParseAll reads a sequence of top-level expressions, e.g. a define
// followed by a use of the defined name.
func ParseAll(input string) ([]*Node, error) {
	p := &parser{input: []rune(input), pos: 0}
	var nodes []*Node
	for {
		p.skipWhitespace()
		if p.pos >= len(p.input) {
			break
		}
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("empty input")
	}
	return nodes, nil
}

func (p *parser) parseNode() (*Node, error) {
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of input")
	}
	ch := p.input[p.pos]
	switch {
	case ch == '\'':
		return p.parseQuote()
	case ch == '(':
		return p.parseList()
	default:
		return p.parseAtom()
	}
}

func (p *parser) parseQuote() (*Node, error) {
	p.pos++ // skip '\''
	inner, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	return &Node{
		Kind: NodeList,
		Children: []*Node{
			{Kind: NodeSymbol, Str: "quote"},
			inner,
		},
	}, nil
}

func (p *parser) parseList() (*Node, error) {
	p.pos++ // skip '('
	var children []*Node
	for {
		p.skipWhitespace()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("unclosed list")
		}
		if p.input[p.pos] == ')' {
			p.pos++ // skip ')'
			return &Node{Kind: NodeList, Children: children}, nil
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (p *parser) parseAtom() (*Node, error) {
	start := p.pos
	for p.pos < len(p.input) && !isDelimiter(p.input[p.pos]) {
		p.pos++
	}
	token := string(p.input[start:p.pos])
	if token == "" {
		return nil, fmt.Errorf("unexpected character: %c", p.input[start])
	}

	if token == "#t" {
		return &Node{Kind: NodeBool, Bool: true}, nil
	}
	if token == "#f" {
		return &Node{Kind: NodeBool, Bool: false}, nil
	}

	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return &Node{Kind: NodeNumber, Int: i}, nil
	}

	return &Node{Kind: NodeSymbol, Str: token}, nil
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == ';' {
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
			continue
		}
		if !unicode.IsSpace(ch) {
			break
		}
		p.pos++
	}
}

func isDelimiter(ch rune) bool {
	return unicode.IsSpace(ch) || ch == '(' || ch == ')' || ch == ';' || ch == '\''
}
