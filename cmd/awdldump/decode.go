package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/Frostie314159/awdl-frame-parser/awdl"
	"github.com/Frostie314159/awdl-frame-parser/awdl/awdllayer"
	"github.com/google/gopacket"
	"github.com/kballard/go-shellquote"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

var hexSeparators = strings.NewReplacer(" ", "", ":", "", "-", "", "\t", "")

// parseHexFrame parses a hexadecimal frame.
// The frame may start at the vendor action header or at the AWDL header.
func parseHexFrame(input string, opts awdl.DecodeOptions) (f awdl.Frame, e error) {
	wire, e := hex.DecodeString(hexSeparators.Replace(input))
	if e != nil {
		return f, e
	}
	if len(wire) > 0 && wire[0] == awdllayer.CategoryVendorSpecific {
		l := awdllayer.AWDL{Options: opts}
		e = l.DecodeFromBytes(wire, gopacket.NilDecodeFeedback)
		return l.Frame, e
	}
	return opts.DecodeFrame(wire)
}

// readHexFile reads frames from a file, one or more shell-quoted words per line.
// Lines starting with '#' are skipped.
func readHexFile(filename string) (inputs []string, e error) {
	file, e := os.Open(filename)
	if e != nil {
		return nil, e
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words, e := shellquote.Split(line)
		if e != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, lineno, e)
		}
		inputs = append(inputs, words...)
	}
	return inputs, scanner.Err()
}

func init() {
	var file string
	defineCommand(&cli.Command{
		Name:      "decode",
		Usage:     "Decode hexadecimal Action Frames.",
		ArgsUsage: "HEX...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "file",
				Usage:       "Read frames from `FILE`, one or more per line.",
				Destination: &file,
			},
		},
		Action: func(c *cli.Context) error {
			inputs := c.Args().Slice()
			if file != "" {
				more, e := readHexFile(file)
				if e != nil {
					return e
				}
				inputs = append(inputs, more...)
			}
			if len(inputs) == 0 {
				return cli.ShowSubcommandHelp(c)
			}

			var errs error
			for i, input := range inputs {
				f, e := parseHexFrame(input, decodeOpts)
				if e != nil {
					errs = multierr.Append(errs, fmt.Errorf("frame %d: %w", i, e))
					continue
				}
				describe(c.App.Writer, nil, f)
			}
			return errs
		},
	})
}
