// Command madafsa builds a MA-DAFSA from a word-list file and either
// benchmarks the build or serves an interactive prefix-completion REPL.
// It holds no persisted state: every run rebuilds the automaton from the
// word list given on the command line.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/milden6/madafsa"
	"github.com/milden6/madafsa/internal/dotgraph"
	"github.com/milden6/madafsa/internal/wordlist"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in *os.File, out, errOut *os.File) int {
	fs := flag.NewFlagSet("madafsa", flag.ContinueOnError)
	fs.SetOutput(errOut)
	wordsPath := fs.String("words", "", "path to a word list file, one word per line (required)")
	bench := fs.Bool("bench", false, "build the automaton, print timing and size statistics, then exit")
	dotPath := fs.String("dot", "", "write a GraphViz dump of the automaton to this path")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *wordsPath == "" {
		fmt.Fprintln(errOut, "madafsa: -words is required")
		fs.Usage()
		return 2
	}

	words, err := wordlist.ReadFile(*wordsPath)
	if err != nil {
		fmt.Fprintf(errOut, "madafsa: reading %s: %v\n", *wordsPath, err)
		return 1
	}

	a := madafsa.New()
	start := time.Now()
	if err := a.BuildFromWordList(words); err != nil {
		fmt.Fprintf(errOut, "madafsa: build: %v\n", err)
		return 1
	}
	elapsed := time.Since(start)

	if *dotPath != "" {
		if err := dumpDot(a, *dotPath); err != nil {
			fmt.Fprintf(errOut, "madafsa: dot dump: %v\n", err)
		}
	}

	if *bench {
		fmt.Fprintf(out, "words=%d states=%d symbols=%d collisions=%d build=%s\n",
			a.NumberOfWords(), a.NumberOfStates(), a.NumberOfTotalSymbols(),
			a.BuildCollisions(), elapsed)
		return 0
	}

	repl(a, in, out)
	return 0
}

func dumpDot(a *madafsa.Automaton, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	d := dotgraph.New(f, "madafsa")
	a.Dump(d)
	return d.Err()
}

// repl reads prefixes from in, one per line, and prints their completions
// until EOF.
func repl(a *madafsa.Automaton, in *os.File, out *os.File) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		prefix := scanner.Text()
		completions, ok := a.SuffixesForPrefix(prefix)
		if !ok {
			fmt.Fprintf(out, "%s: no match\n", prefix)
			continue
		}
		sort.Strings(completions)
		for _, suffix := range completions {
			fmt.Fprintf(out, "%s%s\n", prefix, suffix)
		}
	}
}
