package node

import (
	"context"

	logging "github.com/ipfs/go-log/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"golang.org/x/xerrors"

	"github.com/filecoin-project/ledger-bridge/blockchain"
	"github.com/filecoin-project/ledger-bridge/node/config"
	"github.com/filecoin-project/ledger-bridge/node/modules"
	"github.com/filecoin-project/ledger-bridge/peeractors"
)

var log = logging.Logger("node")

// special is a type used to give keys to modules which
// can't really be identified by the returned type
type special struct{ id int }

type invoke int

// Invokes are called in the order they are defined.
//
//nolint:golint
const (
	// BindPeerActorsKey hands every component the peer actors once the node
	// has started. Keep it after everything that produces endpoints.
	BindPeerActorsKey = invoke(iota)

	_nInvokes // keep this last
)

type Settings struct {
	// modules is a map of constructors for DI
	//
	// In most cases the index will be a reflect. Type of element returned by
	// the constructor, but for some 'constructors' it's hard to specify what's
	// the return type should be (or the constructor returns fx group)
	modules map[interface{}]fx.Option

	// invokes are separate from modules as they can't be referenced by return
	// type, and must be applied in correct order
	invokes []fx.Option

	Config bool // Config option applied
}

func defaults() []Option {
	return []Option{
		Override(new(*config.Node), config.DefaultNode),
		Override(new(*logging.ZapEventLogger), modules.BridgeLogger),
	}
}

// BridgeNode wires the blockchain bridge and binds it at startup.
func BridgeNode() Option {
	return Options(
		Override(new(*blockchain.Addr), modules.BlockchainBridge),
		Override(new(peeractors.PeerActors), modules.PeerActors),

		Override(BindPeerActorsKey, modules.BindPeerActors),
	)
}

// Config sets the node configuration.
func Config(cfg *config.Node) Option {
	return func(s *Settings) error {
		if s.Config {
			return xerrors.New("the Config option can only be applied once")
		}
		s.Config = true

		return Override(new(*config.Node), func() *config.Node {
			return cfg
		})(s)
	}
}

type StopFunc func(context.Context) error

// New builds and starts a new bridge node
func New(ctx context.Context, opts ...Option) (StopFunc, error) {
	settings := Settings{
		modules: map[interface{}]fx.Option{},
		invokes: make([]fx.Option, _nInvokes),
	}

	// apply module options in the right order
	if err := Options(Options(defaults()...), Options(opts...))(&settings); err != nil {
		return nil, xerrors.Errorf("applying node options failed: %w", err)
	}

	// gather constructors for fx.Options
	ctors := make([]fx.Option, 0, len(settings.modules))
	for _, opt := range settings.modules {
		ctors = append(ctors, opt)
	}

	// fill holes in invokes for use in fx.Options
	for i, opt := range settings.invokes {
		if opt == nil {
			settings.invokes[i] = fx.Options()
		}
	}

	app := fx.New(
		fx.Options(ctors...),
		fx.Options(settings.invokes...),

		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logging.Logger("fx").Desugar()}
		}),
	)

	if err := app.Start(ctx); err != nil {
		return nil, xerrors.Errorf("starting node: %w", err)
	}

	log.Info("bridge node started")
	return app.Stop, nil
}
