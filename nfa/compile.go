package nfa

import (
	"github.com/coregx/tinyre/syntax"
)

// CompilerConfig configures code generation.
type CompilerConfig struct {
	// MaxRecursionDepth limits how deeply the code generator recurses into
	// the syntax tree. Zero or less means no limit: goroutine stacks grow,
	// so any tree Parse accepts can be compiled.
	// Default: 0
	MaxRecursionDepth int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxRecursionDepth: 0,
	}
}

// Compiler compiles syntax trees into programs.
type Compiler struct {
	config  CompilerConfig
	builder *Builder
	depth   int // current recursion depth
}

// NewCompiler creates a new compiler with the given configuration
func NewCompiler(config CompilerConfig) *Compiler {
	return &Compiler{
		config:  config,
		builder: NewBuilder(),
	}
}

// NewDefaultCompiler creates a new compiler with default configuration
func NewDefaultCompiler() *Compiler {
	return NewCompiler(DefaultCompilerConfig())
}

// Compile compiles ast with the default configuration.
func Compile(ast *syntax.Node) (*Prog, error) {
	return NewDefaultCompiler().Compile(ast)
}

// Compile generates code for ast followed by a single trailing Match.
// On failure no program is returned.
func (c *Compiler) Compile(ast *syntax.Node) (*Prog, error) {
	c.builder = NewBuilder()
	c.depth = 0
	return c.compile(ast)
}

// compile runs code generation on the current builder.
func (c *Compiler) compile(ast *syntax.Node) (*Prog, error) {
	if err := c.gen(ast); err != nil {
		return nil, err
	}
	if _, err := c.builder.Emit(MatchInst()); err != nil {
		return nil, err
	}
	return c.builder.Build(), nil
}

// gen emits the code for one node.
func (c *Compiler) gen(n *syntax.Node) error {
	c.depth++
	defer func() { c.depth-- }()
	if c.config.MaxRecursionDepth > 0 && c.depth > c.config.MaxRecursionDepth {
		return &CompileError{Code: ErrTooComplex, PC: c.builder.PC()}
	}
	if n == nil {
		return &CompileError{Code: ErrInvalidNode, PC: c.builder.PC()}
	}

	switch n.Op {
	case syntax.OpChar:
		if len(n.Sub) != 0 {
			return &CompileError{Code: ErrInvalidNode, PC: c.builder.PC()}
		}
		_, err := c.builder.Emit(CharInst(n.Char))
		return err
	case syntax.OpSeq:
		for _, sub := range n.Sub {
			if err := c.gen(sub); err != nil {
				return err
			}
		}
		return nil
	case syntax.OpOr:
		if len(n.Sub) != 2 {
			return &CompileError{Code: ErrInvalidNode, PC: c.builder.PC()}
		}
		return c.genOr(n.Sub[0], n.Sub[1])
	case syntax.OpPlus, syntax.OpStar, syntax.OpQuestion:
		if len(n.Sub) != 1 {
			return &CompileError{Code: ErrInvalidNode, PC: c.builder.PC()}
		}
		switch n.Op {
		case syntax.OpPlus:
			return c.genPlus(n.Sub[0])
		case syntax.OpStar:
			return c.genStar(n.Sub[0])
		default:
			return c.genQuestion(n.Sub[0])
		}
	default:
		return &CompileError{Code: ErrInvalidNode, PC: c.builder.PC()}
	}
}

// genOr emits
//
//	    split L1, L2
//	L1: e1
//	    jmp L3
//	L2: e2
//	L3:
func (c *Compiler) genOr(e1, e2 *syntax.Node) error {
	l1, err := c.builder.Next()
	if err != nil {
		return err
	}
	split, err := c.builder.Emit(SplitInst(l1, 0))
	if err != nil {
		return err
	}
	if err := c.gen(e1); err != nil {
		return err
	}
	jump, err := c.builder.Emit(JumpInst(0))
	if err != nil {
		return err
	}
	if !c.builder.PatchSplit(split, c.builder.PC()) {
		return &CompileError{Code: ErrFailOr, PC: split}
	}
	if err := c.gen(e2); err != nil {
		return err
	}
	if !c.builder.PatchJump(jump, c.builder.PC()) {
		return &CompileError{Code: ErrFailOr, PC: jump}
	}
	return nil
}

// genPlus emits
//
//	L1: e
//	    split L1, L2
//	L2:
func (c *Compiler) genPlus(e *syntax.Node) error {
	l1 := c.builder.PC()
	if err := c.gen(e); err != nil {
		return err
	}
	l2, err := c.builder.Next()
	if err != nil {
		return err
	}
	_, err = c.builder.Emit(SplitInst(l1, l2))
	return err
}

// genStar emits
//
//	L1: split L2, L3
//	L2: e
//	    jmp L1
//	L3:
func (c *Compiler) genStar(e *syntax.Node) error {
	l2, err := c.builder.Next()
	if err != nil {
		return err
	}
	l1, err := c.builder.Emit(SplitInst(l2, 0))
	if err != nil {
		return err
	}
	if err := c.gen(e); err != nil {
		return err
	}
	if _, err := c.builder.Emit(JumpInst(l1)); err != nil {
		return err
	}
	if !c.builder.PatchSplit(l1, c.builder.PC()) {
		return &CompileError{Code: ErrFailStar, PC: l1}
	}
	return nil
}

// genQuestion emits
//
//	    split L1, L2
//	L1: e
//	L2:
func (c *Compiler) genQuestion(e *syntax.Node) error {
	l1, err := c.builder.Next()
	if err != nil {
		return err
	}
	split, err := c.builder.Emit(SplitInst(l1, 0))
	if err != nil {
		return err
	}
	if err := c.gen(e); err != nil {
		return err
	}
	if !c.builder.PatchSplit(split, c.builder.PC()) {
		return &CompileError{Code: ErrFailQuestion, PC: split}
	}
	return nil
}
