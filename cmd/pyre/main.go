// Command pyre searches a file with a derivative-based regular expression.
//
// Usage:
//
//	pyre [--debug] [--first] [--no-greedy] <regex> <target-path>
//
// Every match span is printed on its own line as "start:end: text", with
// the matched text highlighted when stdout is a terminal. Exit code 0 when
// at least one match was found, 1 when none, 2 on a malformed pattern or
// I/O failure.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/coregx/pyre"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("pyre", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	debug := fs.Bool("debug", false, "dump the compiled DFA to stderr")
	first := fs.Bool("first", false, "report only the leftmost match")
	noGreedy := fs.Bool("no-greedy", false, "end each match at the first accepting position")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: pyre [--debug] [--first] [--no-greedy] <regex> <target-path>")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return exitError
	}
	pattern, target := fs.Arg(0), fs.Arg(1)

	config := pyre.DefaultConfig()
	config.Greedy = !*noGreedy
	re, err := pyre.CompileWithConfig(pattern, config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyre: %v\n", err)
		return exitError
	}
	if *debug {
		fmt.Fprint(os.Stderr, re.DebugString())
	}

	input, err := os.ReadFile(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pyre: %v\n", err)
		return exitError
	}

	var spans []pyre.Span
	if *first {
		if groups := re.Search(input); groups != nil {
			spans = append(spans, groups[0])
		}
	} else {
		if all := re.SearchAll(input); all != nil {
			spans = all[0]
		}
	}
	if len(spans) == 0 {
		return exitNoMatch
	}

	highlight := stdoutIsTerminal()
	for _, s := range spans {
		printSpan(input, s, highlight)
	}
	return exitMatch
}

// printSpan emits one match as "start:end: text". On a terminal the
// matched text is shown in reverse video.
func printSpan(input []byte, s pyre.Span, highlight bool) {
	text := input[s.Start:s.End]
	if highlight {
		fmt.Printf("%d:%d: \x1b[7m%s\x1b[0m\n", s.Start, s.End, text)
		return
	}
	fmt.Printf("%d:%d: %s\n", s.Start, s.End, text)
}
