package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	account := NewAccount("account_number", 100)

	assert.Equal(t, "account_number", account.AccountNumber)
	assert.Equal(t, int64(100), account.InitialAmount)
	assert.Empty(t, account.Transactions())
	assert.Equal(t, int64(100), account.Balance())
}

func TestNewAccountAcceptsNegativeOpeningBalance(t *testing.T) {
	account := NewAccount("overdrawn", -50)

	assert.Equal(t, int64(-50), account.Balance())
}

func TestDepositAppendsTransaction(t *testing.T) {
	account := NewAccount("account_number", 100)

	before := time.Now().UTC()
	tx := account.Deposit(1000)

	require.Len(t, account.Transactions(), 1)
	assert.Equal(t, TransactionDeposit, tx.Type)
	assert.Equal(t, int64(1000), tx.Amount)
	assert.False(t, tx.Date.Before(before))
	assert.Equal(t, tx, account.Transactions()[0])
}

func TestWithdrawAppendsTransaction(t *testing.T) {
	account := NewAccount("account_number", 100)

	tx := account.Withdraw(500)

	require.Len(t, account.Transactions(), 1)
	assert.Equal(t, TransactionWithdraw, tx.Type)
	assert.Equal(t, int64(500), tx.Amount)
	assert.Equal(t, tx, account.Transactions()[0])
}

func TestBalanceFoldsTransactionLog(t *testing.T) {
	account := NewAccount("account_number", 1000)

	account.Withdraw(500)
	account.Deposit(2000)

	assert.Equal(t, int64(2500), account.Balance())
}

func TestDepositThenWithdrawRoundTrips(t *testing.T) {
	account := NewAccount("account_number", 320)

	account.Deposit(75)
	account.Withdraw(75)

	assert.Equal(t, int64(320), account.Balance())
	assert.Len(t, account.Transactions(), 2)
}

func TestWithdrawBeyondBalanceGoesNegative(t *testing.T) {
	account := NewAccount("account_number", 100)

	account.Withdraw(250)

	assert.Equal(t, int64(-150), account.Balance())
}

func TestTransactionDatesAreMonotonic(t *testing.T) {
	account := NewAccount("account_number", 0)

	account.Deposit(1)
	account.Withdraw(2)
	account.Deposit(3)

	transactions := account.Transactions()
	require.Len(t, transactions, 3)
	for i := 1; i < len(transactions); i++ {
		assert.False(t, transactions[i].Date.Before(transactions[i-1].Date))
	}
}

func TestExistingAccountPreservesSuppliedHistory(t *testing.T) {
	history := []Transaction{
		{Type: TransactionDeposit, Amount: 50, Date: time.Now().UTC()},
		{Type: TransactionWithdraw, Amount: 20, Date: time.Now().UTC()},
	}

	account := ExistingAccount("account_number", history, 100)

	assert.Equal(t, history, account.Transactions())
	assert.Equal(t, int64(130), account.Balance())
}

func TestTransactionsReturnsACopy(t *testing.T) {
	account := NewAccount("account_number", 0)
	account.Deposit(10)

	view := account.Transactions()
	view[0].Amount = 9999

	assert.Equal(t, int64(10), account.Transactions()[0].Amount)
	assert.Equal(t, int64(10), account.Balance())
}

func TestSignedContribution(t *testing.T) {
	deposit := Transaction{Type: TransactionDeposit, Amount: 42}
	withdraw := Transaction{Type: TransactionWithdraw, Amount: 42}

	assert.Equal(t, int64(42), deposit.Signed())
	assert.Equal(t, int64(-42), withdraw.Signed())
}
