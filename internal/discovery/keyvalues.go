// Package discovery builds the list of launchable games from Steam libraries
// and the system uninstall inventory.
package discovery

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSyntax reports malformed KeyValues text.
var ErrSyntax = errors.New("keyvalues: syntax error")

// Node is one KeyValues entry: either a string value or a block of children.
type Node struct {
	Key      string
	Value    string
	Children []*Node
	// Block is true when the entry was written as { ... }.
	Block bool
}

// Child returns the first direct child with key, compared case-insensitively.
func (n *Node) Child(key string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if strings.EqualFold(c.Key, key) {
			return c
		}
	}
	return nil
}

// String returns the value of the direct child with key, or "" when absent
// or when the child is a block.
func (n *Node) String(key string) string {
	c := n.Child(key)
	if c == nil || c.Block {
		return ""
	}
	return c.Value
}

// ParseKeyValues parses Valve KeyValues text (.vdf, .acf) into a root node
// whose children are the top-level entries.
func ParseKeyValues(text string) (*Node, error) {
	p := &kvParser{src: text}
	root := &Node{Block: true}
	children, err := p.parseEntries(false)
	if err != nil {
		return nil, err
	}
	root.Children = children
	return root, nil
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokString
	tokOpen
	tokClose
)

type kvParser struct {
	src  string
	pos  int
	line int
}

// parseEntries reads key/value pairs until EOF (top level) or a closing brace.
func (p *kvParser) parseEntries(nested bool) ([]*Node, error) {
	var out []*Node
	for {
		kind, key, err := p.next()
		if err != nil {
			return nil, err
		}
		switch kind {
		case tokEOF:
			if nested {
				return nil, p.errorf("unexpected end of input, missing '}'")
			}
			return out, nil
		case tokClose:
			if !nested {
				return nil, p.errorf("unexpected '}'")
			}
			return out, nil
		case tokOpen:
			return nil, p.errorf("unexpected '{' without key")
		}

		kind, value, err := p.next()
		if err != nil {
			return nil, err
		}
		switch kind {
		case tokString:
			out = append(out, &Node{Key: key, Value: value})
		case tokOpen:
			children, err := p.parseEntries(true)
			if err != nil {
				return nil, err
			}
			out = append(out, &Node{Key: key, Children: children, Block: true})
		default:
			return nil, p.errorf("key %q has no value", key)
		}
	}
}

// next returns the next token, skipping whitespace, comments, and
// conditional tags such as [$WIN32].
func (p *kvParser) next() (tokenKind, string, error) {
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return tokEOF, "", nil
		}
		switch c := p.src[p.pos]; {
		case c == '/' && strings.HasPrefix(p.src[p.pos:], "//"):
			p.skipLine()
		case c == '[':
			end := strings.IndexByte(p.src[p.pos:], ']')
			if end < 0 {
				return tokEOF, "", p.errorf("unterminated conditional")
			}
			p.pos += end + 1
		case c == '{':
			p.pos++
			return tokOpen, "", nil
		case c == '}':
			p.pos++
			return tokClose, "", nil
		case c == '"':
			s, err := p.quoted()
			return tokString, s, err
		default:
			return tokString, p.bare(), nil
		}
	}
}

// quoted reads a double-quoted string with backslash escapes.
func (p *kvParser) quoted() (string, error) {
	start := p.line
	p.pos++
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		switch c {
		case '"':
			return b.String(), nil
		case '\n':
			p.line++
			b.WriteByte(c)
		case '\\':
			if p.pos >= len(p.src) {
				break
			}
			e := p.src[p.pos]
			p.pos++
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '\\', '"':
				b.WriteByte(e)
			default:
				b.WriteByte('\\')
				b.WriteByte(e)
			}
		default:
			b.WriteByte(c)
		}
	}
	p.line = start
	return "", p.errorf("unterminated string")
}

// bare reads an unquoted token.
func (p *kvParser) bare() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '"' || c == '{' || c == '}' || isSpace(c) {
			break
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

func (p *kvParser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		if p.src[p.pos] == '\n' {
			p.line++
		}
		p.pos++
	}
}

func (p *kvParser) skipLine() {
	for p.pos < len(p.src) && p.src[p.pos] != '\n' {
		p.pos++
	}
}

func (p *kvParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrSyntax, p.line+1, fmt.Sprintf(format, args...))
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}
