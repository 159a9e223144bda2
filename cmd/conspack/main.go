// Command conspack is a thin driver over the conspack codec: it encodes,
// decodes, or pretty-prints a value tree read from a file or stdin,
// writing the result to a file or stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/conspack-go/conspack"
	"github.com/conspack-go/conspack/explain"
)

func main() {
	app := &cli.App{
		Name:  "conspack",
		Usage: "inspect and round-trip conspack-encoded values",
		Commands: []*cli.Command{
			{
				Name:   "encode",
				Usage:  "read a JSON value description and write conspack wire bytes",
				Flags:  ioFlags(),
				Action: encodeCommand,
			},
			{
				Name:   "decode",
				Usage:  "decode a conspack byte stream and print its s-expression form",
				Flags:  ioFlags(),
				Action: decodeCommand,
			},
			{
				Name:   "explain",
				Usage:  "alias for decode",
				Flags:  ioFlags(),
				Action: decodeCommand,
			},
		},
		Action: func(c *cli.Context) error {
			return cli.ShowAppHelp(c)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "conspack:", err)
		os.Exit(1)
	}
}

func ioFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "in",
			Usage: "input file (defaults to stdin)",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "output file (defaults to stdout)",
		},
	}
}

func encodeCommand(c *cli.Context) error {
	data, err := readInput(c.String("in"))
	if err != nil {
		return err
	}

	n, err := decodeNode(data)
	if err != nil {
		return err
	}
	v, err := buildValue(n)
	if err != nil {
		return err
	}
	defer conspack.Free(v)

	wire, err := conspack.Encode(v)
	if err != nil {
		return err
	}

	outPath := c.String("out")
	out, err := openOutput(outPath)
	if err != nil {
		return err
	}
	if outPath != "" {
		defer out.Close()
	}

	_, err = out.Write(wire)
	return err
}

func decodeCommand(c *cli.Context) error {
	data, err := readInput(c.String("in"))
	if err != nil {
		return err
	}

	v := conspack.Decode(data)
	defer conspack.Free(v)

	outPath := c.String("out")
	out, err := openOutput(outPath)
	if err != nil {
		return err
	}
	if outPath != "" {
		defer out.Close()
	}

	_, err = fmt.Fprintln(out, explain.Explain(v))
	return err
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func openOutput(path string) (*os.File, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
