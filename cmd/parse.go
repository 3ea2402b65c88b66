package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/urfave/cli"
	"github.com/warpdl/cookieparse/cmd/common"
	env "github.com/warpdl/cookieparse/common"
	"github.com/warpdl/cookieparse/pkg/cookies"
	"github.com/warpdl/cookieparse/pkg/logger"
)

var errNoHeader = errors.New("no cookie header given: pass it as an argument, with --file or --cookie, or pipe it on stdin")

var (
	decoderName string
	headerFile  string
	asJSON      bool
	verbose     bool
	logFile     string

	decodeFlag = cli.StringFlag{
		Name:        "decode, d",
		Usage:       "value decoder: url, strict, raw or base64",
		Value:       env.DefaultDecoder,
		EnvVar:      env.DecoderEnv,
		Destination: &decoderName,
	}
	fileFlag = cli.StringFlag{
		Name:        "file, f",
		Usage:       "read the header from a file instead of the argument",
		Destination: &headerFile,
	}
	cookieFlag = cli.StringSliceFlag{
		Name:  "cookie, c",
		Usage: "build the header from a name=value pair (repeatable)",
	}
	jsonFlag = cli.BoolFlag{
		Name:        "json, j",
		Usage:       "print the cookies as a JSON array (default: false)",
		Destination: &asJSON,
	}
	verboseFlag = cli.BoolFlag{
		Name:        "verbose, V",
		Usage:       "log dropped cookies to stderr (default: false)",
		EnvVar:      env.DebugEnv,
		Destination: &verbose,
	}

	logFileFlag = cli.StringFlag{
		Name:        "log-file",
		Usage:       "append log lines to this file, with or without --verbose",
		EnvVar:      env.LogFileEnv,
		Destination: &logFile,
	}

	parseFlags = []cli.Flag{
		decodeFlag,
		fileFlag,
		cookieFlag,
		jsonFlag,
		verboseFlag,
		logFileFlag,
	}
)

func parse(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	header, err := readHeader(ctx, ctx.Args().First())
	if err != nil {
		return err
	}
	p, l, err := newParser(decoderName)
	if err != nil {
		return err
	}
	defer closeLogger(ctx, l)
	return printCookies(stdout, p.Parse(header), asJSON)
}

// readHeader picks the header from arg, --file, --cookie or stdin, in
// that order.
func readHeader(ctx *cli.Context, arg string) (string, error) {
	if arg != "" {
		return trimHeader(arg), nil
	}
	if headerFile != "" {
		return ReadHeaderFile(appFs, headerFile)
	}
	if pairs := ctx.StringSlice("cookie"); len(pairs) > 0 {
		return HeaderFromPairs(pairs)
	}
	if stdinIsTerminal() {
		return "", errNoHeader
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("error: reading stdin: %w", err)
	}
	return joinHeaderLines(string(data)), nil
}

func newParser(decoder string) (*cookies.Parser, logger.Logger, error) {
	decode, err := cookies.DecoderByName(decoder)
	if err != nil {
		return nil, nil, err
	}
	l, err := newLogger()
	if err != nil {
		return nil, nil, err
	}
	return cookies.NewParser(cookies.WithDecoder(decode), cookies.WithLogger(l)), l, nil
}

// newLogger logs to stderr in verbose mode and to --log-file when set.
func newLogger() (logger.Logger, error) {
	l := logger.New(stderr, verbose)
	if logFile == "" {
		return l, nil
	}
	f, err := appFs.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("error: opening log file: %w", err)
	}
	return logger.NewMultiLogger(l, logger.NewFileLogger(f)), nil
}

func closeLogger(ctx *cli.Context, l logger.Logger) {
	if err := l.Close(); err != nil {
		common.PrintRuntimeErr(ctx, ctx.Command.Name, "close_logger", err)
	}
}

func textValue(v string) string {
	if strings.ContainsFunc(v, unicode.IsControl) {
		return strconv.Quote(v)
	}
	return v
}

// printCookies writes one "name<TAB>value" line per cookie, or an indented
// JSON array when asJSON is set. Values holding control characters are
// printed as quoted Go strings so every cookie stays on its own line.
func printCookies(w io.Writer, c cookies.Cookies, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(c)
	}
	for name, value := range c.Pairs() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", name, textValue(value)); err != nil {
			return err
		}
	}
	return nil
}
