package service

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bank-ledger/internal/domain"
	"bank-ledger/internal/errors"
)

// fakeRepository is an in-memory stand-in for the store port.
type fakeRepository struct {
	initialAmounts map[string]int64
	logs           map[string][]domain.Transaction
	nextID         int64

	saveTransactionCalls int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		initialAmounts: make(map[string]int64),
		logs:           make(map[string][]domain.Transaction),
	}
}

func (f *fakeRepository) SaveAccount(account *domain.Account) (int64, error) {
	if _, ok := f.initialAmounts[account.AccountNumber]; ok {
		return 0, errors.ErrAccountExists
	}
	f.initialAmounts[account.AccountNumber] = account.InitialAmount
	f.nextID++
	return f.nextID, nil
}

func (f *fakeRepository) SaveTransaction(accountNumber string, tx domain.Transaction) (int64, error) {
	f.saveTransactionCalls++
	if _, ok := f.initialAmounts[accountNumber]; !ok {
		return 0, errors.ErrAccountNotFound
	}
	f.logs[accountNumber] = append(f.logs[accountNumber], tx)
	f.nextID++
	return f.nextID, nil
}

func (f *fakeRepository) Load(accountNumber string) (*domain.Account, error) {
	initialAmount, ok := f.initialAmounts[accountNumber]
	if !ok {
		return nil, errors.ErrAccountNotFound
	}
	history := make([]domain.Transaction, len(f.logs[accountNumber]))
	copy(history, f.logs[accountNumber])
	return domain.ExistingAccount(accountNumber, history, initialAmount), nil
}

func newTestService(repo domain.Repository) *LedgerService {
	return NewLedgerService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCreateAccountPersistsHeader(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	account, err := svc.CreateAccount("A1", 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), account.Balance())

	loaded, err := svc.GetAccount("A1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, int64(100), loaded.InitialAmount)
	assert.Empty(t, loaded.Transactions())
}

func TestCreateAccountDuplicateSurfacesAlreadyExists(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.CreateAccount("A1", 100)
	require.NoError(t, err)

	_, err = svc.CreateAccount("A1", 200)
	assert.ErrorIs(t, err, errors.ErrAccountExists)
}

func TestDepositPersistsExactlyOneTransaction(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.CreateAccount("A1", 100)
	require.NoError(t, err)

	tx, err := svc.Deposit("A1", 50)
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionDeposit, tx.Type)
	assert.Equal(t, int64(50), tx.Amount)
	assert.Equal(t, 1, repo.saveTransactionCalls)

	loaded, err := svc.GetAccount("A1")
	require.NoError(t, err)
	assert.Equal(t, int64(150), loaded.Balance())
	require.Len(t, loaded.Transactions(), 1)
	assert.Equal(t, *tx, loaded.Transactions()[0])
}

func TestWithdrawPersistsExactlyOneTransaction(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.CreateAccount("A1", 1000)
	require.NoError(t, err)

	_, err = svc.Withdraw("A1", 500)
	require.NoError(t, err)
	_, err = svc.Deposit("A1", 2000)
	require.NoError(t, err)

	loaded, err := svc.GetAccount("A1")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), loaded.Balance())

	transactions := loaded.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, domain.TransactionWithdraw, transactions[0].Type)
	assert.Equal(t, domain.TransactionDeposit, transactions[1].Type)
}

func TestDepositOnMissingAccountIsReported(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.Deposit("UNKNOWN", 50)
	assert.ErrorIs(t, err, errors.ErrAccountNotFound)
}

func TestWithdrawOnMissingAccountIsReported(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.Withdraw("UNKNOWN", 50)
	assert.ErrorIs(t, err, errors.ErrAccountNotFound)
}

func TestWithdrawBeyondBalanceIsAccepted(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	_, err := svc.CreateAccount("A1", 100)
	require.NoError(t, err)

	_, err = svc.Withdraw("A1", 250)
	require.NoError(t, err)

	loaded, err := svc.GetAccount("A1")
	require.NoError(t, err)
	assert.Equal(t, int64(-150), loaded.Balance())
}

func TestGetAccountMissingIsEmptyResult(t *testing.T) {
	svc := newTestService(newFakeRepository())

	account, err := svc.GetAccount("UNKNOWN")
	assert.NoError(t, err)
	assert.Nil(t, account)
}
