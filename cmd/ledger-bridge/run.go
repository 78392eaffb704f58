package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contrib.go.opencensus.io/exporter/prometheus"
	"github.com/urfave/cli/v2"
	"go.opencensus.io/stats/view"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/ledger-bridge/metrics"
	"github.com/filecoin-project/ledger-bridge/node"
)

var runCmd = &cli.Command{
	Name:  "run",
	Usage: "Start the bridge and wait for messages",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "metrics-listen",
			Usage: "serve prometheus metrics on this address, overrides Metrics.ListenAddress",
		},
		&cli.DurationFlag{
			Name:  "shutdown-timeout",
			Value: 30 * time.Second,
		},
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx)
		if err != nil {
			return err
		}
		if cctx.IsSet("metrics-listen") {
			cfg.Metrics.ListenAddress = cctx.String("metrics-listen")
		}

		ctx, cancel := signal.NotifyContext(cctx.Context, os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if cfg.Metrics.ListenAddress != "" {
			if err := serveMetrics(cfg.Metrics.ListenAddress); err != nil {
				return err
			}
		}

		stop, err := node.New(ctx, node.BridgeNode(), node.Config(cfg))
		if err != nil {
			return err
		}

		<-ctx.Done()
		log.Warn("shutting down")

		sctx, scancel := context.WithTimeout(context.Background(), cctx.Duration("shutdown-timeout"))
		defer scancel()
		if err := stop(sctx); err != nil {
			return xerrors.Errorf("stopping node: %w", err)
		}

		log.Info("graceful shutdown successful")
		return nil
	},
}

func serveMetrics(listen string) error {
	if err := view.Register(metrics.DefaultViews...); err != nil {
		return xerrors.Errorf("registering metric views: %w", err)
	}

	pe, err := prometheus.NewExporter(prometheus.Options{
		Namespace: "ledgerbridge",
	})
	if err != nil {
		return xerrors.Errorf("creating the prometheus stats exporter: %w", err)
	}

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", pe)
		if err := http.ListenAndServe(listen, mux); err != nil {
			log.Errorw("metrics endpoint failed", "listen", listen, "err", err)
		}
	}()

	return nil
}
