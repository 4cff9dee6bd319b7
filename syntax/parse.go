package syntax

// scanState is the lexical state of the scanner.
type scanState uint8

const (
	stateChar scanState = iota
	stateEscape
)

// frame is the scan state saved when a group is opened.
type frame struct {
	seq   []*Node
	seqOr []*Node
}

// parser holds the mutable scan state. Group nesting is handled with an
// explicit stack of frames, so arbitrarily deep nesting does not consume
// call stack.
type parser struct {
	seq   []*Node // nodes of the concatenation in progress
	seqOr []*Node // completed alternation branches at this level
	stack []frame
}

// Parse parses pattern into a syntax tree.
// It returns a *Error describing the first syntax violation.
func Parse(pattern string) (*Node, error) {
	var p parser
	state := stateChar
	escapePos := 0

	for pos := 0; pos < len(pattern); pos++ {
		c := pattern[pos]

		if state == stateEscape {
			if !isMeta(c) {
				return nil, &Error{Code: ErrInvalidEscape, Pos: pos, Char: c}
			}
			p.seq = append(p.seq, Char(c))
			state = stateChar
			continue
		}

		switch c {
		case '+', '*', '?':
			if err := p.quantify(c, pos); err != nil {
				return nil, err
			}
		case '(':
			p.stack = append(p.stack, frame{seq: p.seq, seqOr: p.seqOr})
			p.seq, p.seqOr = nil, nil
		case ')':
			if err := p.closeGroup(pos); err != nil {
				return nil, err
			}
		case '|':
			if len(p.seq) == 0 {
				return nil, &Error{Code: ErrNoPrev, Pos: pos}
			}
			p.seqOr = append(p.seqOr, Seq(p.seq...))
			p.seq = nil
		case '\\':
			state = stateEscape
			escapePos = pos
		default:
			p.seq = append(p.seq, Char(c))
		}
	}

	if state == stateEscape {
		return nil, &Error{Code: ErrInvalidEscape, Pos: escapePos, Char: '\\'}
	}
	if len(p.stack) != 0 {
		return nil, &Error{Code: ErrNoRightParen, Pos: -1}
	}

	if len(p.seq) != 0 {
		p.seqOr = append(p.seqOr, Seq(p.seq...))
	}
	ast := foldOr(p.seqOr)
	if ast == nil {
		return nil, &Error{Code: ErrEmpty, Pos: -1}
	}
	return ast, nil
}

// MustParse is like Parse but panics if the pattern cannot be parsed.
func MustParse(pattern string) *Node {
	ast, err := Parse(pattern)
	if err != nil {
		panic("syntax: Parse(`" + pattern + "`): " + err.Error())
	}
	return ast
}

// quantify wraps the last node of the current sequence.
func (p *parser) quantify(q byte, pos int) error {
	if len(p.seq) == 0 {
		return &Error{Code: ErrNoPrev, Pos: pos}
	}
	last := len(p.seq) - 1
	switch q {
	case '+':
		p.seq[last] = Plus(p.seq[last])
	case '*':
		p.seq[last] = Star(p.seq[last])
	default:
		p.seq[last] = Question(p.seq[last])
	}
	return nil
}

// closeGroup folds the current level and appends the result to the
// enclosing level.
func (p *parser) closeGroup(pos int) error {
	if len(p.stack) == 0 {
		return &Error{Code: ErrInvalidRightParen, Pos: pos}
	}
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if len(p.seq) != 0 {
		p.seqOr = append(p.seqOr, Seq(p.seq...))
	}
	group := foldOr(p.seqOr)

	p.seq, p.seqOr = top.seq, top.seqOr
	if group != nil {
		p.seq = append(p.seq, group)
	}
	return nil
}

// foldOr combines alternation branches into a right-nested Or tree:
// [a, b, c] becomes Or(a, Or(b, c)). It returns nil for no branches.
func foldOr(branches []*Node) *Node {
	if len(branches) == 0 {
		return nil
	}
	ast := branches[len(branches)-1]
	for i := len(branches) - 2; i >= 0; i-- {
		ast = Or(branches[i], ast)
	}
	return ast
}

// isMeta reports whether c may follow a backslash.
func isMeta(c byte) bool {
	switch c {
	case '\\', '(', ')', '|', '+', '*', '?':
		return true
	}
	return false
}
