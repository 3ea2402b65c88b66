package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"
	"github.com/warpdl/cookieparse/cmd/common"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "cookieparse",
		HelpName:              "cookieparse",
		Usage:                 "A forgiving HTTP Cookie header parser.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "cookieparse <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: common.HelpTemplate,
		OnUsageError:          common.UsageErrorCallback,
		Writer:                stdout,
		ErrWriter:             stderr,
		Commands: []cli.Command{
			{
				Name:                   "parse",
				Aliases:                []string{"p"},
				Usage:                  "parse a Cookie header into name/value pairs",
				Action:                 parse,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     common.CmdHelpTemplate,
				Description:            ParseDescription,
				UseShortOptionHandling: true,
				Flags:                  parseFlags,
			},
			{
				Name:                   "get",
				Aliases:                []string{"g"},
				Usage:                  "print the value of a single cookie",
				Action:                 get,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     common.CmdHelpTemplate,
				Description:            GetDescription,
				UseShortOptionHandling: true,
				Flags:                  getFlags,
			},
			{
				Name:                   "import",
				Aliases:                []string{"i"},
				Usage:                  "read cookies for a domain from a browser cookie store",
				Action:                 importStore,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     common.CmdHelpTemplate,
				Description:            ImportDescription,
				UseShortOptionHandling: true,
				Flags:                  importFlags,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of cookieparse",
				UsageText:          " ",
				CustomHelpTemplate: common.CmdHelpTemplate,
				Action:             common.GetVersion,
			},
		},
		Action:      common.Help,
		HideHelp:    true,
		HideVersion: true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
