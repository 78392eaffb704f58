// Package peeractors defines the endpoints node components use to reach each
// other, and the Bind message that hands them out at startup.
package peeractors

import (
	"github.com/filecoin-project/ledger-bridge/accountant"
	"github.com/filecoin-project/ledger-bridge/lib/actor"
)

// BlockchainBridgeSubs is the subscription bundle of the blockchain bridge.
type BlockchainBridgeSubs struct {
	Bind                  actor.Recipient[BindMessage]
	ReportAccountsPayable actor.Recipient[accountant.ReportAccountsPayable]
}

// PeerActors holds the subscription bundles of every component in the node.
type PeerActors struct {
	BlockchainBridge BlockchainBridgeSubs
}

// Endpoints maps endpoint identifiers to the endpoints themselves.
func (pa PeerActors) Endpoints() map[string]actor.Endpoint {
	return map[string]actor.Endpoint{
		"blockchain_bridge.bind":                    pa.BlockchainBridge.Bind,
		"blockchain_bridge.report_accounts_payable": pa.BlockchainBridge.ReportAccountsPayable,
	}
}

// BindMessage is delivered once at startup to every component.
type BindMessage struct {
	PeerActors PeerActors
}
