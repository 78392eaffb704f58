package accountant

import (
	"time"

	"github.com/ipfs/go-cid"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
)

// PayableAccount is an amount this node owes to a peer's wallet.
type PayableAccount struct {
	Wallet            address.Address
	Balance           big.Int
	LastPaidTimestamp time.Time

	// PendingPaymentTransaction is the message settling this account, if one
	// has been sent and has not landed yet.
	PendingPaymentTransaction *cid.Cid
}

// ReportAccountsPayable lists accounts the accountant considers due.
type ReportAccountsPayable struct {
	Accounts []PayableAccount
}

// TotalOwed sums the balances of accounts.
func TotalOwed(accounts []PayableAccount) big.Int {
	total := big.Zero()
	for _, acc := range accounts {
		if acc.Balance.Int == nil {
			continue
		}
		total = big.Add(total, acc.Balance)
	}
	return total
}
