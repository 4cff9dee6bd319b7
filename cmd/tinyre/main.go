// Command tinyre matches texts against a pattern.
//
// Usage:
//
//	tinyre [-dump] [-v] PATTERN [TEXT...]
//
// Each TEXT is reported as true or false on its own line. Without TEXT
// arguments the lines of standard input are matched instead.
// The exit status is 0 if any text matched, 1 if none did and 2 on a
// usage or compile error.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/coregx/tinyre"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "tinyre: ", 0)

	fs := flag.NewFlagSet("tinyre", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dump := fs.Bool("dump", false, "print the syntax tree and the compiled program")
	verbose := fs.Bool("v", false, "print the selected strategy and search statistics")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: tinyre [-dump] [-v] PATTERN [TEXT...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return exitError
	}

	pattern := fs.Arg(0)
	re, err := tinyre.Compile(pattern)
	if err != nil {
		logger.Print(err)
		return exitError
	}

	if *dump {
		fmt.Fprintf(stdout, "ast: %v\n", re.AST())
		fmt.Fprint(stdout, re.Prog())
	}
	if *verbose {
		fmt.Fprintf(stdout, "strategy: %v\n", re.Strategy())
	}

	matched := false
	check := func(text string) bool {
		ok, err := re.IsMatch([]byte(text))
		if err != nil {
			logger.Printf("%q: %v", text, err)
			return false
		}
		fmt.Fprintln(stdout, ok)
		matched = matched || ok
		return true
	}

	if fs.NArg() > 1 {
		for _, text := range fs.Args()[1:] {
			if !check(text) {
				return exitError
			}
		}
	} else {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			if !check(scanner.Text()) {
				return exitError
			}
		}
		if err := scanner.Err(); err != nil {
			logger.Print(err)
			return exitError
		}
	}

	if *verbose {
		stats := re.Stats()
		fmt.Fprintf(stdout, "stats: empty=%d literal=%d prefilter=%d backtrack=%d\n",
			stats.EmptySearches, stats.LiteralSearches, stats.PrefilterSearches, stats.BacktrackSearches)
	}

	if matched {
		return exitMatch
	}
	return exitNoMatch
}
