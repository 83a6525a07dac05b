package main

import (
	"fmt"
	"os"

	"github.com/bluettduncanj/bigrational/config"
	"github.com/bluettduncanj/bigrational/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "ratio"
	app.Usage = "Exact fraction arithmetic without floating point rounding."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the optional TOML configuration file",
		},
		&cli.IntFlag{
			Name:  "log-level",
			Value: logger.INFO,
			Usage: "the logger output level",
		},
		&cli.StringFlag{
			Name:  "log-filter",
			Usage: "a regular expression to filter logger output",
		},
	}
	app.EnableBashCompletion = true
	app.Before = setupLogger
	app.Commands = []*cli.Command{
		{
			Name:    "reduce",
			Aliases: []string{"r"},
			Usage:   "Print the canonical form of a fraction",
			Action:  reduceCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "numerator",
					Aliases: []string{"n"},
					Usage:   "the numerator, a base-10 integer of any size",
				},
				&cli.StringFlag{
					Name:    "denominator",
					Aliases: []string{"d"},
					Value:   "1",
					Usage:   "the denominator, a base-10 integer of any size",
				},
			},
		},
		{
			Name:   "compare",
			Usage:  "Compare two fractions, printing -1, 0 or 1",
			Action: compareCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "left",
					Aliases: []string{"a"},
					Usage:   "the left operand, e.g. 1/2",
				},
				&cli.StringFlag{
					Name:    "right",
					Aliases: []string{"b"},
					Usage:   "the right operand, e.g. 2/3",
				},
			},
		},
		{
			Name:   "encode",
			Usage:  "Encode a fraction to its hex msgpack form",
			Action: encodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "value",
					Aliases: []string{"v"},
					Usage:   "the fraction, e.g. -34/567",
				},
			},
		},
		{
			Name:   "decode",
			Usage:  "Decode a hex msgpack fraction and print it as JSON",
			Action: decodeCmd,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "raw",
					Usage: "the hex encoded msgpack payload",
				},
			},
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogger(c *cli.Context) error {
	level := c.Int("log-level")
	filter := c.String("log-filter")
	if path := c.String("config"); path != "" {
		custom, err := config.Initialize(path)
		if err != nil {
			return err
		}
		if !c.IsSet("log-level") {
			level = custom.Log.Level
		}
		if filter == "" {
			filter = custom.Log.Filter
		}
		logger.SetLimiter(custom.Log.Limit)
	}
	logger.SetLevel(level)
	return logger.SetFilter(filter)
}
