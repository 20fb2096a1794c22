package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/treeshape/treeshape/calc"
	"github.com/treeshape/treeshape/parser"
)

var inFile string
var startingKind string
var verboseMode bool

var parseCommand = cli.Command{
	Name:    "parse",
	Aliases: []string{"p"},
	Usage:   "Parse a file (or stdin) with the calc grammar and dump the tree",
	Action:  parse,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "input",
			Usage:       "input file (stdin if omitted)",
			Required:    false,
			TakesFile:   true,
			Destination: &inFile,
		},
		cli.StringFlag{
			Name:        "start",
			Usage:       "starting kind",
			Value:       "expr",
			Destination: &startingKind,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose parse tracing",
			Destination: &verboseMode,
		},
	},
}

var kindsCommand = cli.Command{
	Name:  "kinds",
	Usage: "List the kinds of the calc grammar",
	Action: func(c *cli.Context) error {
		names := calc.KindNames()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func parse(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
		parser.EnableTracing(true)
	}

	var text []byte
	var err error
	if inFile == "" {
		text, err = ioutil.ReadAll(os.Stdin)
	} else {
		text, err = ioutil.ReadFile(inFile)
	}
	if err != nil {
		return err
	}

	kind, ok := calc.Kind(startingKind)
	if !ok {
		return fmt.Errorf("unknown kind %q", startingKind)
	}

	el, err := parser.ParseText(kind, string(text))
	if err != nil {
		if unconsumed, ok := err.(parser.UnconsumedInputError); ok {
			logrus.Warn(unconsumed)
		} else {
			return err
		}
	}

	switch x := el.(type) {
	case *parser.Node:
		fmt.Print(x.Dump())
		for _, d := range x.Validate() {
			fmt.Printf("%d:%d: %s\n", d.Line+1, d.Col+1, d.Message)
		}
	case *parser.Token:
		fmt.Println(x)
	}
	return nil
}
