package meta

import (
	"errors"

	"github.com/coregx/tinyre/nfa"
	"github.com/coregx/tinyre/prefilter"
	"github.com/coregx/tinyre/syntax"
	"github.com/coregx/tinyre/vm"
)

// Compile compiles a pattern using the default configuration.
//
// Example:
//
//	engine, err := meta.Compile("hello|world")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(engine.Strategy()) // UseLiterals
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles a pattern with custom configuration.
//
// The pipeline is: validate config → parse → generate code → select
// strategy → build the engines the strategy needs.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	compiler := nfa.NewCompiler(nfa.CompilerConfig{
		MaxRecursionDepth: config.MaxRecursionDepth,
	})
	prog, err := compiler.Compile(ast)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	return newEngine(pattern, ast, prog, config), nil
}

func newEngine(pattern string, ast *syntax.Node, prog *nfa.Prog, config Config) *Engine {
	a := analyze(ast, prog, config)

	e := &Engine{
		pattern:  pattern,
		ast:      ast,
		prog:     prog,
		config:   config,
		strategy: a.strategy,
		bt: vm.New(prog, vm.Config{
			MaxSteps:       config.MaxSteps,
			MaxVisitedBits: config.MaxVisitedBits,
		}),
	}
	// A nil *ByteSet must not become a non-nil interface.
	if bs := prefilter.NewByteSet(a.firstByte); bs != nil {
		e.candidates = bs
	}

	if a.strategy == UseLiterals {
		lits, err := prefilter.NewLiteralSet(a.literals)
		if err == nil && lits.IsComplete() {
			e.literals = lits
		} else {
			// Fall back to the backtracker.
			e.strategy = UseBacktrack
			if e.candidates != nil {
				e.strategy = UseFirstByte
			}
		}
	}

	return e
}
