package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/filecoin-project/ledger-bridge/node/config"
)

var configCmd = &cli.Command{
	Name:  "config",
	Usage: "Manage node config",
	Subcommands: []*cli.Command{
		configDefaultCmd,
	},
}

var configDefaultCmd = &cli.Command{
	Name:  "default",
	Usage: "Print default node config",
	Action: func(cctx *cli.Context) error {
		cb, err := config.ConfigComment(config.DefaultNode())
		if err != nil {
			return err
		}

		fmt.Fprint(cctx.App.Writer, string(cb))
		return nil
	},
}
