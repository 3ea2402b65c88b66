package cmd

import (
	"errors"

	"github.com/urfave/cli"
	"github.com/warpdl/cookieparse/cmd/common"
	env "github.com/warpdl/cookieparse/common"
	"github.com/warpdl/cookieparse/internal/cookiestore"
)

var (
	storePath     string
	importDomain  string
	importDecoder string

	// Swapped by tests.
	browserDirs = cookiestore.DefaultDirs

	importFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "from",
			Usage:       "path of the cookie store (default: the first browser profile found)",
			Destination: &storePath,
		},
		cli.StringFlag{
			Name:        "domain",
			Usage:       "host whose cookies should be imported",
			Destination: &importDomain,
		},
		cli.StringFlag{
			Name:        "decode, d",
			Usage:       "value decoder: url, strict, raw or base64",
			Value:       env.DefaultImportDecoder,
			Destination: &importDecoder,
		},
		jsonFlag,
		verboseFlag,
		logFileFlag,
	}
)

func importStore(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if importDomain == "" {
		return common.PrintErrWithCmdHelp(ctx, errors.New("--domain is required"))
	}
	p, l, err := newParser(importDecoder)
	if err != nil {
		return err
	}
	defer closeLogger(ctx, l)

	var header string
	if storePath != "" {
		header, _, err = cookiestore.Import(appFs, storePath, importDomain, l)
	} else {
		var src *cookiestore.Source
		header, src, err = cookiestore.DetectBrowser(appFs, cookiestore.KnownBrowsers(browserDirs()), importDomain, l)
		if err == nil {
			l.Info("using %s cookie store %s", src.Browser, src.Path)
		}
	}
	if err != nil {
		return err
	}
	return printCookies(stdout, p.Parse(header), asJSON)
}
