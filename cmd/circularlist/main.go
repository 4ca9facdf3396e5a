package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"circular-list/internal/commandhandler"
	"circular-list/internal/parser"
	"circular-list/internal/platform/helper"

	"github.com/urfave/cli/v2"
)

// demoScript is the reference walk through every mutation.
var demoScript = []string{
	"addLast", "1", "addLast", "2", "addLast", "3", "print",
	"insert", "1", "5", "print",
	"remove", "1", "print",
	"removeFirst", "print",
	"removeLast", "print",
	"removeAll", "print", "size",
}

func main() {
	config, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	app := cli.App{
		Name:  "circularlist",
		Usage: "run operation scripts against a circular linked list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "logging level (trace, debug, info, warn, error)",
				Value: config.LogLevel,
			},
			&cli.BoolFlag{
				Name:  "log-caller",
				Usage: "include the calling function in log lines",
				Value: config.LogCaller,
			},
		},
		Before: func(ctx *cli.Context) error {
			return helper.ConfigureLogger(ctx.String("log-level"), ctx.Bool("log-caller"))
		},
		Commands: []*cli.Command{{
			Name:      "run",
			Usage:     "run the operations given as arguments on an empty list",
			ArgsUsage: "OP [ARGS]... [OP [ARGS]...]...",
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() == 0 {
					return cli.Exit("no operations given", 2)
				}
				return runScript(ctx.App.Writer, ctx.Args().Slice())
			},
		}, {
			Name:  "demo",
			Usage: "run the reference scenario and print every step",
			Action: func(ctx *cli.Context) error {
				return runScript(ctx.App.Writer, demoScript)
			},
		}},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func runScript(w io.Writer, tokens []string) error {
	commands, err := parser.Parse(tokens)
	if err != nil {
		return fmt.Errorf("parsing script: %w", err)
	}
	helper.Log.Infof("Running %d command(s)", len(commands))

	handler := commandhandler.NewListCommandHandler(nil)
	results, err := handler.Run(commands)
	helper.Log.Debugf("History: %s", helper.FormatList(handler.History()))
	for _, result := range results {
		if result.Output != "" {
			fmt.Fprintf(w, "%s => %s\n", result.Command, result.Output)
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(w, helper.FormatList(handler.Snapshot()))
	return nil
}
