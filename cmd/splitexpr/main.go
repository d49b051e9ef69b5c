package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"splitexpr"
)

func main() {
	app := &cli.App{
		Name:      "splitexpr",
		Usage:     "evaluate one-line expressions",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "print the parse tree before each result",
			},
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "dump the token sequence before each result",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 0 {
				for _, arg := range c.Args().Slice() {
					eval(arg, c.Bool("echo"), c.Bool("tokens"))
				}
				return nil
			}
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				if strings.TrimSpace(sc.Text()) == "" {
					continue
				}
				eval(sc.Text(), c.Bool("echo"), c.Bool("tokens"))
			}
			if err := sc.Err(); err != nil {
				return tracerr.Wrap(err)
			}
			return nil
		},
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			tracerr.PrintSourceColor(err)
			os.Exit(1)
		},
	}
	app.Run(os.Args)
}

// eval runs one line through the interpreter and prints its value. An error
// ends the line, never the loop.
func eval(line string, echo, tokens bool) {
	toks, err := splitexpr.Lex(line)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if tokens {
		repr.Println(toks)
	}
	a, err := splitexpr.Build(toks)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if echo {
		fmt.Printf("%v : ", a)
	}
	v, err := a.Eval()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(v)
}
