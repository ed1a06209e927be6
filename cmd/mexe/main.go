package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/mexe"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var (
		inname, verb, level      string
		binary, echo, toks, unic bool
		depth                    int
	)
	fs := flag.NewFlagSet("mexe", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&inname, "in", "", "input file with one expression per line (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", "%g", "result formatting string")
	fs.BoolVar(&binary, "binary", false, "only accept a single operation between two numbers")
	fs.BoolVar(&echo, "echo", false, "print parse trees")
	fs.BoolVar(&toks, "tokens", false, "print token streams")
	fs.BoolVar(&unic, "unicode", false, "accept × and ÷ as operators")
	fs.IntVar(&depth, "max-depth", mexe.DefaultMaxDepth, "maximum parenthesis nesting depth (0 for no limit)")
	fs.StringVar(&level, "log-level", "error", "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: mexe [flags] [--] [expr ...]")
		fmt.Fprintln(fs.Output(), "Use -- before expressions that start with a minus sign, e.g. mexe -- -(1 + 2).")
		fmt.Fprintln(fs.Output(), "\nFlags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level %q\n", level)
		return 2
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).
		With().Timestamp().Str("cmd", "mexe").Logger().
		Level(lvl)
	if depth < 0 {
		logger.Error().Int("max-depth", depth).Msg("max depth must not be negative")
		return 2
	}

	opts := []mexe.ParseOption{mexe.MaxDepth(depth)}
	if unic {
		opts = append(opts, mexe.UnicodeOperators())
	}
	preset := mexe.ParsingPreset(opts...)

	var srcs []string
	in, closer, err := infile(inname, stdin, fs.NArg() == 0)
	if err != nil {
		logger.Error().Err(err).Str("in", inname).Msg("failed to open input")
		return 2
	}
	if in != nil {
		srcs, err = readLines(in)
		if closer != nil {
			if cerr := closer.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
		if err != nil {
			logger.Error().Err(err).Str("in", inname).Msg("failed to read input")
			return 2
		}
	}
	srcs = append(srcs, fs.Args()...)
	logger.Debug().Int("count", len(srcs)).Msg("evaluating")

	verb += "\n"
	status := 0
	for _, src := range srcs {
		if toks {
			t, err := mexe.Tokenize(src, preset)
			if err == nil {
				s := make([]string, len(t))
				for i, tok := range t {
					s[i] = tok.String()
				}
				fmt.Fprintf(stdout, "[%s] : ", strings.Join(s, " "))
			}
		}
		if echo {
			if a, err := mexe.Parse(src, preset); err == nil {
				fmt.Fprintf(stdout, "%v : ", a)
			}
		}
		var r float64
		if binary {
			r, err = mexe.EvalBinary(src, preset)
		} else {
			r, err = mexe.Eval(src, preset)
		}
		if err != nil {
			ev := logger.Warn().Err(err).Str("expr", src).Stringer("kind", mexe.KindOf(err))
			var ie mexe.InputError
			if errors.As(err, &ie) {
				ev = ev.Int("pos", ie.Pos())
			}
			ev.Msg("evaluation failed")
			fmt.Fprintln(stdout, "error:", err)
			status = 1
			continue
		}
		logger.Debug().Str("expr", src).Float64("result", r).Msg("evaluated")
		fmt.Fprintf(stdout, verb, r)
	}
	return status
}

// infile opens the input source. The result is nil if there is no input other
// than arguments.
func infile(inname string, stdin io.Reader, std bool) (io.Reader, io.Closer, error) {
	switch {
	case inname != "" && inname != "-":
		f, err := os.Open(inname)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	case inname == "-", std:
		return stdin, nil, nil
	}
	return nil, nil, nil
}

// readLines reads the non-blank lines of in as separate expressions.
func readLines(in io.Reader) ([]string, error) {
	var r []string
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		r = append(r, line)
	}
	return r, sc.Err()
}
