package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/filecoin-project/ledger-bridge/lib/cryptde"
)

var fingerprintCmd = &cli.Command{
	Name:      "fingerprint",
	Usage:     "Print the fingerprint the bridge logs for the configured consuming key",
	ArgsUsage: "[key]",
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}

		key := cfg.BlockchainBridge.ConsumingPrivateKey
		if cctx.Args().Present() {
			key = cctx.Args().First()
		}
		if key == "" {
			fmt.Fprintln(cctx.App.Writer, "no consuming private key specified")
			return nil
		}

		hash, err := cryptde.ByName(cfg.BlockchainBridge.FingerprintHash)
		if err != nil {
			return err
		}

		fmt.Fprintln(cctx.App.Writer, cryptde.FingerprintOf(hash, key))
		return nil
	},
}
