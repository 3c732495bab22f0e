// Command awdldump decodes AWDL Action Frames from hexadecimal input and packet captures.
package main

import (
	"os"
	"sort"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/Frostie314159/awdl-frame-parser/core/logging"
	"github.com/Frostie314159/awdl-frame-parser/mk/version"
	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var logger = logging.New("awdldump")

var decodeOpts awdl.DecodeOptions

var app = &cli.App{
	Version: version.Get().String(),
	Usage:   "Decode and inspect AWDL Action Frames.",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:        "lenient",
			EnvVars:     []string{"AWDLDUMP_LENIENT"},
			Usage:       "Keep undecodable TLVs as Unknown instead of rejecting the frame.",
			Destination: &decodeOpts.Lenient,
		},
	},
	Before: func(c *cli.Context) error {
		logger.Debug("start", zap.String("argv", shellquote.Join(os.Args...)), zap.Bool("lenient", decodeOpts.Lenient))
		return nil
	},
}

func defineCommand(command *cli.Command) {
	app.Commands = append(app.Commands, command)
}

func main() {
	sort.Sort(cli.CommandsByName(app.Commands))
	if e := app.Run(os.Args); e != nil {
		logger.Fatal("awdldump error", zap.Error(e))
	}
}
