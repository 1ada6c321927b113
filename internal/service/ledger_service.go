package service

import (
	"errors"
	"log/slog"

	"bank-ledger/internal/domain"
	apperrors "bank-ledger/internal/errors"
)

// LedgerService sequences domain operations with persistence calls. It holds
// no state of its own; every request loads or builds its own Account.
type LedgerService struct {
	repo   domain.Repository
	logger *slog.Logger
}

func NewLedgerService(repo domain.Repository, logger *slog.Logger) *LedgerService {
	return &LedgerService{
		repo:   repo,
		logger: logger,
	}
}

// CreateAccount constructs a new account and persists its header. Duplicate
// account numbers and storage faults are returned to the caller.
func (s *LedgerService) CreateAccount(accountNumber string, initialAmount int64) (*domain.Account, error) {
	s.logger.Info("Creating account", "account_number", accountNumber, "initial_amount", initialAmount)

	account := domain.NewAccount(accountNumber, initialAmount)
	if _, err := s.repo.SaveAccount(account); err != nil {
		return nil, err
	}

	return account, nil
}

// Deposit loads the account, appends a deposit, and persists exactly the
// newly created transaction. The load and the append are two independent
// store calls; concurrent mutations on the same account are not serialized
// against each other.
func (s *LedgerService) Deposit(accountNumber string, amount int64) (*domain.Transaction, error) {
	s.logger.Info("Depositing into account", "account_number", accountNumber, "amount", amount)

	account, err := s.repo.Load(accountNumber)
	if err != nil {
		return nil, err
	}

	tx := account.Deposit(amount)
	if _, err := s.repo.SaveTransaction(accountNumber, tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

// Withdraw is symmetric to Deposit. No overdraft check is performed.
func (s *LedgerService) Withdraw(accountNumber string, amount int64) (*domain.Transaction, error) {
	s.logger.Info("Withdrawing from account", "account_number", accountNumber, "amount", amount)

	account, err := s.repo.Load(accountNumber)
	if err != nil {
		return nil, err
	}

	tx := account.Withdraw(amount)
	if _, err := s.repo.SaveTransaction(accountNumber, tx); err != nil {
		return nil, err
	}

	return &tx, nil
}

// GetAccount loads an account with its full history. A missing account is an
// empty result, not an error; any other fault propagates.
func (s *LedgerService) GetAccount(accountNumber string) (*domain.Account, error) {
	s.logger.Info("Getting account", "account_number", accountNumber)

	account, err := s.repo.Load(accountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return account, nil
}
