package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/relq/relq"
	"github.com/relq/relq/internal/output"

	"github.com/chzyer/readline"
)

var (
	query = flag.String("q", "", "Parse a single expression and exit.")
)

func main() {
	flag.Parse()

	if *query != "" {
		if err := parseAndPrint(*query); err != nil {
			fmt.Fprintln(os.Stderr, "Error while parsing:", err)
			os.Exit(1)
		}
		return
	}

	l, err := readline.NewEx(&readline.Config{
		Prompt:          "# ",
		HistoryFile:     "/tmp/relq.tmp",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	fmt.Println("Welcome to relq.")
repl:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue repl
		} else if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("Error while reading line:", err)
			continue repl
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue repl
		}
		if trimmed == "quit" || trimmed == "exit" || trimmed == "\\q" {
			break
		}

		if strings.HasPrefix(trimmed, "\\t") {
			printTokens(strings.TrimSpace(trimmed[len("\\t"):]))
			continue repl
		}

		if strings.HasPrefix(trimmed, "\\p") {
			trimmed = strings.TrimSpace(trimmed[len("\\p"):])
		}

		if err := parseAndPrint(trimmed); err != nil {
			fmt.Println("Error while parsing:", err)
			continue repl
		}
	}
}

func printTokens(input string) {
	lex := relq.NewLexer(input)
	if err := lex.Err(); err != nil {
		fmt.Println("Warning: token stream truncated:", err)
	}
	output.WriteTokenTable(os.Stdout, lex.Tokens())
}

func parseAndPrint(input string) error {
	lex := relq.NewLexer(input)
	if err := lex.Err(); err != nil {
		fmt.Println("Warning: token stream truncated:", err)
	}

	expr, err := relq.NewParserFromLexer(lex).Parse()
	if err != nil {
		return err
	}

	if err := output.WriteExpressionJSON(os.Stdout, expr); err != nil {
		return err
	}
	fmt.Println(expr)
	return nil
}
