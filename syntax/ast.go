// Package syntax parses tinyre patterns into abstract syntax trees.
//
// The grammar is deliberately small: literal bytes, grouping with ( ),
// alternation with |, the postfix quantifiers + * ? and backslash escapes
// for the metacharacters themselves. There are no character classes,
// anchors, captures or lazy quantifiers.
package syntax

import (
	"fmt"
	"strings"
)

// Op identifies the kind of an AST node and determines how Sub is used.
type Op uint8

const (
	// OpChar matches exactly one literal byte (Node.Char). No children.
	OpChar Op = iota + 1

	// OpPlus matches one or more repetitions of Sub[0].
	OpPlus

	// OpStar matches zero or more repetitions of Sub[0].
	OpStar

	// OpQuestion matches zero or one occurrence of Sub[0].
	OpQuestion

	// OpOr matches Sub[0] or, failing that, Sub[1].
	OpOr

	// OpSeq matches each of Sub in order.
	OpSeq
)

// String returns a human-readable representation of the Op
func (op Op) String() string {
	switch op {
	case OpChar:
		return "Char"
	case OpPlus:
		return "Plus"
	case OpStar:
		return "Star"
	case OpQuestion:
		return "Question"
	case OpOr:
		return "Or"
	case OpSeq:
		return "Seq"
	default:
		return fmt.Sprintf("Op(%d)", op)
	}
}

// Node is a node of the syntax tree. Every node exclusively owns its
// children; trees produced by Parse are never shared or cyclic.
type Node struct {
	Op   Op
	Char byte    // for OpChar
	Sub  []*Node // children, see Op
}

// Char returns a literal node.
func Char(c byte) *Node {
	return &Node{Op: OpChar, Char: c}
}

// Plus returns a one-or-more node over sub.
func Plus(sub *Node) *Node {
	return &Node{Op: OpPlus, Sub: []*Node{sub}}
}

// Star returns a zero-or-more node over sub.
func Star(sub *Node) *Node {
	return &Node{Op: OpStar, Sub: []*Node{sub}}
}

// Question returns a zero-or-one node over sub.
func Question(sub *Node) *Node {
	return &Node{Op: OpQuestion, Sub: []*Node{sub}}
}

// Or returns an alternation of left and right.
func Or(left, right *Node) *Node {
	return &Node{Op: OpOr, Sub: []*Node{left, right}}
}

// Seq returns a concatenation of subs.
func Seq(subs ...*Node) *Node {
	return &Node{Op: OpSeq, Sub: subs}
}

// Equal reports whether n and other describe the same tree.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Op != other.Op || len(n.Sub) != len(other.Sub) {
		return false
	}
	if n.Op == OpChar && n.Char != other.Char {
		return false
	}
	for i := range n.Sub {
		if !n.Sub[i].Equal(other.Sub[i]) {
			return false
		}
	}
	return true
}

// String renders the tree in a compact debugging form, for example
// Or(Seq(a), Or(Seq(b), Seq(c))). Non-printable bytes are shown as \xNN.
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	if n == nil {
		b.WriteString("<nil>")
		return
	}
	if n.Op == OpChar {
		if n.Char >= 0x20 && n.Char < 0x7f {
			b.WriteByte(n.Char)
		} else {
			fmt.Fprintf(b, `\x%02x`, n.Char)
		}
		return
	}
	b.WriteString(n.Op.String())
	b.WriteByte('(')
	for i, sub := range n.Sub {
		if i > 0 {
			b.WriteString(", ")
		}
		sub.writeTo(b)
	}
	b.WriteByte(')')
}
