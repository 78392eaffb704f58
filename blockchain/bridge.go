package blockchain

import (
	"context"
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"go.opencensus.io/stats"
	"go.opencensus.io/tag"

	"github.com/filecoin-project/ledger-bridge/accountant"
	"github.com/filecoin-project/ledger-bridge/lib/actor"
	"github.com/filecoin-project/ledger-bridge/lib/cryptde"
	"github.com/filecoin-project/ledger-bridge/metrics"
	"github.com/filecoin-project/ledger-bridge/peeractors"
)

// ActorName names the bridge in logs, metrics and endpoint targets.
const ActorName = "BlockchainBridge"

// Bridge connects the node's actors to the ledger. Its fields are never
// modified after New, so any number of messages may be handled without
// locking.
type Bridge struct {
	config      Config
	log         *logging.ZapEventLogger
	hash        cryptde.HashFunc
	mailboxSize int
}

type Option func(*Bridge)

// WithLogger replaces the default "BlockchainBridge" logger.
func WithLogger(l *logging.ZapEventLogger) Option {
	return func(b *Bridge) {
		if l != nil {
			b.log = l
		}
	}
}

// WithHashFunc sets the function used to fingerprint the consuming key.
func WithHashFunc(h cryptde.HashFunc) Option {
	return func(b *Bridge) {
		if h != nil {
			b.hash = h
		}
	}
}

func WithMailboxSize(size int) Option {
	return func(b *Bridge) {
		b.mailboxSize = size
	}
}

func New(cfg Config, opts ...Option) *Bridge {
	b := &Bridge{
		config:      cfg,
		hash:        cryptde.Blake2b256,
		mailboxSize: actor.DefaultMailboxSize,
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.log == nil {
		b.log = logging.Logger(ActorName)
	}
	return b
}

// Addr is the handle of a running bridge.
type Addr struct {
	mb *actor.Mailbox
}

// Start runs the bridge on its own mailbox and returns its address.
func (b *Bridge) Start() *Addr {
	mb := actor.NewMailbox(ActorName, b.mailboxSize)
	mb.Start(b.receive)
	return &Addr{mb: mb}
}

// Stop handles every message already delivered, then shuts the bridge down.
func (a *Addr) Stop(ctx context.Context) error {
	return a.mb.Stop(ctx)
}

func (a *Addr) Done() <-chan struct{} {
	return a.mb.Done()
}

func (b *Bridge) receive(msg interface{}) {
	ctx, _ := tag.New(context.Background(), tag.Upsert(metrics.Actor, ActorName))

	switch m := msg.(type) {
	case peeractors.BindMessage:
		ctx, _ = tag.New(ctx, tag.Upsert(metrics.MessageType, "bind"))
		done := metrics.Timer(ctx, metrics.BridgeHandleDuration)
		b.handleBind(m)
		done()
	case accountant.ReportAccountsPayable:
		ctx, _ = tag.New(ctx, tag.Upsert(metrics.MessageType, "report_accounts_payable"))
		done := metrics.Timer(ctx, metrics.BridgeHandleDuration)
		b.handleReportAccountsPayable(m)
		done()
		stats.Record(ctx, metrics.PayableAccountsCount.M(int64(len(m.Accounts))))
	default:
		b.log.Warnw("dropping message of unknown type", "type", fmt.Sprintf("%T", msg))
		return
	}

	stats.Record(ctx, metrics.BridgeMessagesReceived.M(1))
}

// handleBind only reports which consuming key is configured. The peer actors
// carried by the message are not kept yet; settling payments will need them.
func (b *Bridge) handleBind(_ peeractors.BindMessage) {
	key := b.config.ConsumingPrivateKey
	if key == nil {
		b.log.Debug("Received BindMessage; no consuming private key specified")
		return
	}

	// hashes the text of the key, not the bytes its hex encodes
	fp := cryptde.FingerprintOf(b.hash, *key)
	b.log.Debugf("Received BindMessage; consuming private key that hashes to %s", fp)
}

// TODO: submit payments to the ledger once a ledger client exists.
func (b *Bridge) handleReportAccountsPayable(msg accountant.ReportAccountsPayable) {
	b.log.Debugw("Received ReportAccountsPayable message",
		"accounts", len(msg.Accounts),
		"owed", accountant.TotalOwed(msg.Accounts).String())
}
