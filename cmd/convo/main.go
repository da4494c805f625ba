package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DreadHeadHippy/Convo/internal"
	"github.com/labstack/gommon/color"
)

func main() {
	verbose := flag.Bool("verbose", false, "trace lexing/parsing to stderr")
	dumpAST := flag.Bool("ast", false, "run the program, then print its parsed AST")
	flag.Parse()

	internal.SetVerbose(*verbose)

	args := flag.Args()
	if len(args) == 0 {
		runREPL()
		return
	}
	if len(args) != 1 {
		fmt.Println("Usage: convo [-verbose] [-ast] /path/to/source.convo")
		os.Exit(1)
	}

	absPath, err := filepath.Abs(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err))
		os.Exit(1)
	}
	source, err := os.ReadFile(absPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err))
		os.Exit(1)
	}

	if !runSource(absPath, string(source), *dumpAST) {
		os.Exit(1)
	}
}

// runSource runs one program to completion, printing its Say output
// and any lex/parse errors in red. With dumpAST it also prints the
// parsed tree afterwards; the program still runs first.
func runSource(absPath, source string, dumpAST bool) bool {
	result := internal.Run(absPath, source, os.Stdout)
	printErrors(result.Errors)
	if dumpAST {
		fmt.Println(internal.DumpAST(result.Stmts))
	}
	return result.OK
}

func printErrors(errs []*internal.ConvoError) {
	for _, e := range errs {
		fmt.Fprintln(os.Stderr, color.Red(e.Error()))
	}
}

// runREPL reads one line at a time, running each against a single
// persistent session so bindings made by one line are visible to the
// next, and echoing the value of a line that was just an expression.
// Only end of input ends the session; a Stop ends just the line it is
// on, and the REPL keeps reading.
func runREPL() {
	fmt.Println(color.Cyan("Convo REPL — Ctrl-D to exit"))
	sess := internal.NewSession(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.Green("convo> "))
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		result := sess.Eval(line)
		printErrors(result.Errors)
		if result.HasValue {
			fmt.Println(internal.Stringify(result.Value))
		}
	}
}
