package modules

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/fx"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/ledger-bridge/blockchain"
	"github.com/filecoin-project/ledger-bridge/lib/cryptde"
	"github.com/filecoin-project/ledger-bridge/node/config"
	"github.com/filecoin-project/ledger-bridge/peeractors"
)

var log = logging.Logger("modules")

func BridgeLogger() *logging.ZapEventLogger {
	return logging.Logger(blockchain.ActorName)
}

// BlockchainBridge starts the bridge actor; it is stopped with the node.
func BlockchainBridge(lc fx.Lifecycle, cfg *config.Node, l *logging.ZapEventLogger) (*blockchain.Addr, error) {
	bcfg := cfg.BlockchainBridge

	hash, err := cryptde.ByName(bcfg.FingerprintHash)
	if err != nil {
		return nil, xerrors.Errorf("blockchain bridge fingerprint hash: %w", err)
	}

	addr := blockchain.New(bcfg.BridgeConfig(),
		blockchain.WithLogger(l),
		blockchain.WithHashFunc(hash),
		blockchain.WithMailboxSize(bcfg.MailboxSize),
	).Start()

	lc.Append(fx.Hook{
		OnStop: addr.Stop,
	})

	return addr, nil
}

func PeerActors(bridge *blockchain.Addr) peeractors.PeerActors {
	return peeractors.PeerActors{
		BlockchainBridge: blockchain.MakeSubsFrom(bridge),
	}
}

// BindPeerActors sends the single startup Bind to every component.
func BindPeerActors(lc fx.Lifecycle, pa peeractors.PeerActors) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Debugw("binding peer actors", "endpoints", len(pa.Endpoints()))
			if err := pa.BlockchainBridge.Bind.Send(ctx, peeractors.BindMessage{PeerActors: pa}); err != nil {
				return xerrors.Errorf("binding blockchain bridge: %w", err)
			}
			return nil
		},
	})
}
