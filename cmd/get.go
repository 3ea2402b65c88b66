package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

var (
	getAll bool

	getFlags = []cli.Flag{
		decodeFlag,
		fileFlag,
		verboseFlag,
		logFileFlag,
		cli.BoolFlag{
			Name:        "all, a",
			Usage:       "print every value sent under the name (default: false)",
			Destination: &getAll,
		},
	}
)

func get(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	header, err := readHeader(ctx, ctx.Args().Get(1))
	if err != nil {
		return err
	}
	p, l, err := newParser(decoderName)
	if err != nil {
		return err
	}
	defer closeLogger(ctx, l)

	c := p.Parse(header)
	if !c.Has(name) {
		return fmt.Errorf("cookie %q not found", name)
	}
	if !getAll {
		v, _ := c.Get(name)
		fmt.Fprintln(stdout, textValue(v))
		return nil
	}
	for _, v := range c.Values(name) {
		fmt.Fprintln(stdout, textValue(v))
	}
	return nil
}
