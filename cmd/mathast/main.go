// Command mathast parses math expressions and prints their syntax trees.
//
// Parse a single expression:
//
//	mathast -e "1 + 2x"
//
// Or feed one expression per line from a file or stdin:
//
//	mathast formulas.txt
//	echo "sin(x)^2" | mathast -output json
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evalia/mathast/ast"
	"github.com/evalia/mathast/errors"
	"github.com/evalia/mathast/parser"
)

var (
	exprFlag   = flag.String("e", "", "expression to parse")
	outputFlag = flag.String("output", "text", "output format: text or json")
	rightFlag  = flag.Bool("right-assoc", false, "group equal-precedence operators to the right")
	noMulFlag  = flag.Bool("no-implicit-mul", false, "disable implicit multiplication")
	varsFlag   = flag.String("vars", "", "restrict variables to these letters, e.g. -vars xyz")
	debugFlag  = flag.Bool("debug", false, "enable debug logging")
	noColor    = flag.Bool("no-color", false, "disable colored output")
)

func main() {
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *debugFlag {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: *noColor})

	p := parser.New(parserOptions()...)
	formatter := errors.NewFormatter(!*noColor)

	if *exprFlag != "" {
		if err := parseAndPrint(p, *exprFlag, os.Stdout); err != nil {
			printError(formatter, err)
			os.Exit(1)
		}
		return
	}

	in, name, err := openInput(flag.Args())
	if err != nil {
		log.Fatal().Err(err).Msg("cannot open input")
	}
	defer in.Close()
	log.Debug().Str("input", name).Msg("reading expressions")

	var failures *multierror.Error
	scan := bufio.NewScanner(in)
	lineno := 0
	for scan.Scan() {
		lineno++
		line := strings.TrimSpace(scan.Text())
		if line == "" {
			continue
		}
		log.Debug().Int("line", lineno).Str("expr", line).Msg("parsing")
		if err := parseAndPrint(p, line, os.Stdout); err != nil {
			printError(formatter, err)
			failures = multierror.Append(failures, fmt.Errorf("line %d: %w", lineno, err))
		}
	}
	if err := scan.Err(); err != nil {
		log.Fatal().Err(err).Msg("read error")
	}
	if err := failures.ErrorOrNil(); err != nil {
		log.Error().Int("failures", failures.Len()).Msg("some expressions failed to parse")
		os.Exit(1)
	}
}

func parserOptions() []parser.Option {
	var opts []parser.Option
	if *rightFlag {
		opts = append(opts, parser.WithRightAssociativity())
	}
	if *noMulFlag {
		opts = append(opts, parser.WithoutImplicitMultiplication())
	}
	if *varsFlag != "" {
		opts = append(opts, parser.WithVariables([]rune(*varsFlag)...))
	}
	return opts
}

func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return os.Stdin, "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}
	return f, args[0], nil
}

func parseAndPrint(p *parser.Parser, input string, w io.Writer) error {
	node, err := p.Parse(context.Background(), input)
	if err != nil {
		return err
	}
	switch *outputFlag {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(node)
	default:
		printTree(w, node, 0)
		return nil
	}
}

func printTree(w io.Writer, node ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n := node.(type) {
	case *ast.Literal:
		fmt.Fprintf(w, "%sliteral %s\n", indent, n.Text)
	case *ast.Variable:
		fmt.Fprintf(w, "%svariable %s\n", indent, n.Name)
	case *ast.UnaryOp:
		fmt.Fprintf(w, "%sunary %s\n", indent, n.Op.Name)
		printTree(w, n.X, depth+1)
	case *ast.BinaryOp:
		fmt.Fprintf(w, "%sbinary %s\n", indent, n.Op.Name)
		printTree(w, n.Left, depth+1)
		printTree(w, n.Right, depth+1)
	case *ast.FunctionOp:
		fmt.Fprintf(w, "%sfunction %s\n", indent, n.Op.Name)
		for _, arg := range n.Args {
			printTree(w, arg, depth+1)
		}
	}
}

func printError(formatter *errors.Formatter, err error) {
	if fe, ok := err.(interface{ ToFormatted() *errors.FormattedError }); ok {
		fmt.Fprint(os.Stderr, formatter.Format(fe.ToFormatted()))
		return
	}
	fmt.Fprintln(os.Stderr, err.Error())
}
