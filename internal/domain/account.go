package domain

import (
	"time"
)

// Account is the ledger aggregate: an account header plus its append-only
// transaction log. The log is the only source of truth for the balance;
// transactions are never edited or removed once appended.
type Account struct {
	AccountNumber string
	InitialAmount int64

	transactions []Transaction
}

// NewAccount creates an account with an empty transaction history.
// The initial amount is taken as-is; negative opening balances are accepted.
func NewAccount(accountNumber string, initialAmount int64) *Account {
	return &Account{
		AccountNumber: accountNumber,
		InitialAmount: initialAmount,
	}
}

// ExistingAccount rehydrates an account loaded from storage. The supplied
// transactions are trusted to be in their original insertion order.
func ExistingAccount(accountNumber string, transactions []Transaction, initialAmount int64) *Account {
	return &Account{
		AccountNumber: accountNumber,
		InitialAmount: initialAmount,
		transactions:  transactions,
	}
}

// Deposit appends a deposit stamped with the current time and returns the
// created transaction so the caller can persist exactly that record.
// The amount is not validated here.
func (a *Account) Deposit(amount int64) Transaction {
	tx := Transaction{
		Type:   TransactionDeposit,
		Amount: amount,
		Date:   time.Now().UTC(),
	}
	a.transactions = append(a.transactions, tx)
	return tx
}

// Withdraw appends a withdrawal stamped with the current time and returns it.
// No overdraft check is performed; the balance may go negative.
func (a *Account) Withdraw(amount int64) Transaction {
	tx := Transaction{
		Type:   TransactionWithdraw,
		Amount: amount,
		Date:   time.Now().UTC(),
	}
	a.transactions = append(a.transactions, tx)
	return tx
}

// Balance folds the full transaction log on every call: the initial amount
// plus each entry's signed contribution. The result is never cached.
func (a *Account) Balance() int64 {
	balance := a.InitialAmount
	for _, tx := range a.transactions {
		balance += tx.Signed()
	}
	return balance
}

// Transactions returns the ledger entries in insertion order.
func (a *Account) Transactions() []Transaction {
	out := make([]Transaction, len(a.transactions))
	copy(out, a.transactions)
	return out
}

// Repository is the persistence port for ledger accounts. The concrete
// adapter must locate the parent account purely from its account number and
// must return histories in the order they were appended.
type Repository interface {
	// SaveAccount persists a brand-new account header and returns the
	// storage-assigned row id.
	SaveAccount(account *Account) (int64, error)
	// SaveTransaction appends one transaction to the persisted history of
	// the account identified by accountNumber.
	SaveTransaction(accountNumber string, tx Transaction) (int64, error)
	// Load rehydrates an account with its full transaction history.
	Load(accountNumber string) (*Account, error)
}
