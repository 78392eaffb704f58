package blockchain

import (
	"github.com/filecoin-project/ledger-bridge/accountant"
	"github.com/filecoin-project/ledger-bridge/lib/actor"
	"github.com/filecoin-project/ledger-bridge/peeractors"
)

// MakeSubsFrom returns the endpoints other components use to reach the
// bridge at addr. Every call returns a fresh bundle; all of them deliver to
// the same bridge.
func MakeSubsFrom(addr *Addr) peeractors.BlockchainBridgeSubs {
	return peeractors.BlockchainBridgeSubs{
		Bind:                  actor.RecipientFor[peeractors.BindMessage](addr.mb),
		ReportAccountsPayable: actor.RecipientFor[accountant.ReportAccountsPayable](addr.mb),
	}
}
