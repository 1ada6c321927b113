package domain

import (
	"time"
)

// TransactionType discriminates the two kinds of ledger entries.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionWithdraw TransactionType = "withdraw"
)

// Transaction is one immutable ledger entry. Amount is the unsigned magnitude
// as entered by the caller; the sign is derived from Type, never stored.
// Date is assigned server-side when the entry is appended to an account.
type Transaction struct {
	Type   TransactionType
	Amount int64
	Date   time.Time
}

// Signed returns the transaction's contribution to the account balance.
func (t Transaction) Signed() int64 {
	if t.Type == TransactionWithdraw {
		return -t.Amount
	}
	return t.Amount
}
