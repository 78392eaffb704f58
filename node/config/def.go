package config

import (
	"github.com/filecoin-project/ledger-bridge/lib/actor"
	"github.com/filecoin-project/ledger-bridge/lib/cryptde"
)

// Node is the configuration of a bridge node
type Node struct {
	BlockchainBridge BlockchainBridge
	Metrics          Metrics
}

// BlockchainBridge configures the actor talking to the ledger
type BlockchainBridge struct {
	// Key paying peers. Left empty, the bridge runs without one.
	ConsumingPrivateKey string `toml:",omitempty" split_words:"true"`

	// Multihash name of the function used to fingerprint the key in logs
	FingerprintHash string `split_words:"true"`

	// Number of messages that can wait in the bridge inbox
	MailboxSize int `split_words:"true"`
}

type Metrics struct {
	// Address serving prometheus metrics, empty to disable
	ListenAddress string
}

// DefaultNode returns the default config
func DefaultNode() *Node {
	return &Node{
		BlockchainBridge: BlockchainBridge{
			FingerprintHash: cryptde.DefaultHashName,
			MailboxSize:     actor.DefaultMailboxSize,
		},
	}
}
