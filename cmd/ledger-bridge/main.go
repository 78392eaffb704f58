package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/ledger-bridge/build"
	"github.com/filecoin-project/ledger-bridge/lib/bridgelog"
	"github.com/filecoin-project/ledger-bridge/node/config"
)

var log = logging.Logger("main")

func main() {
	bridgelog.SetupLogLevels()

	if err := newApp().Run(os.Args); err != nil {
		log.Errorf("%+v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "ledger-bridge",
		Usage:   "Bridge between the node's actors and the ledger",
		Version: build.UserVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the node config file",
				Value:   "~/.ledger-bridge/config.toml",
				EnvVars: []string{"BRIDGE_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level of the bridge subsystems (debug, info, warn, error)",
			},
		},
		Before: func(cctx *cli.Context) error {
			if lvl := cctx.String("log-level"); lvl != "" {
				return bridgelog.SetLevel(lvl)
			}
			return nil
		},
		Commands: []*cli.Command{
			runCmd,
			fingerprintCmd,
			configCmd,
		},
	}
}

// loadConfig reads the config file named by --config, then applies
// environment overrides.
func loadConfig(cctx *cli.Context) (*config.Node, error) {
	cfg, err := config.FromFile(cctx.String("config"), config.DefaultNode())
	if err != nil {
		return nil, xerrors.Errorf("loading config: %w", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
