package repository

import (
	"database/sql"
	"log/slog"

	"github.com/lib/pq"

	"bank-ledger/internal/domain"
	"bank-ledger/internal/errors"
)

type ledgerRepository struct {
	db     SQLExecutor
	logger *slog.Logger
}

// NewLedgerRepository returns the Postgres adapter for the ledger store port.
func NewLedgerRepository(db SQLExecutor, logger *slog.Logger) domain.Repository {
	return &ledgerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ledgerRepository) SaveAccount(account *domain.Account) (int64, error) {
	query := `
		INSERT INTO bank_accounts (account_number, initial_amount)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(query, account.AccountNumber, account.InitialAmount).Scan(&id)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				r.logger.Warn("Duplicate account creation attempt", "account_number", account.AccountNumber)
				return 0, errors.ErrAccountExists
			}
		}
		r.logger.Error("Failed to save account", "account_number", account.AccountNumber, "error", err)
		return 0, errors.NewAppError(errors.PersistenceError, "failed to save account").WithDetails(err.Error())
	}

	r.logger.Info("Account saved", "account_number", account.AccountNumber, "id", id)
	return id, nil
}

func (r *ledgerRepository) SaveTransaction(accountNumber string, tx domain.Transaction) (int64, error) {
	// Resolve the parent by account number alone; the append must not depend
	// on a SaveAccount call earlier in the same request.
	accountID, err := r.accountID(accountNumber)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO transactions (bank_account_id, type, amount, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = r.db.QueryRow(query, accountID, string(tx.Type), tx.Amount, tx.Date).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to save transaction",
			"account_number", accountNumber,
			"type", tx.Type,
			"amount", tx.Amount,
			"error", err)
		return 0, errors.NewAppError(errors.PersistenceError, "failed to save transaction").WithDetails(err.Error())
	}

	r.logger.Info("Transaction saved", "account_number", accountNumber, "type", tx.Type, "id", id)
	return id, nil
}

func (r *ledgerRepository) Load(accountNumber string) (*domain.Account, error) {
	headerQuery := `
		SELECT account_number, initial_amount
		FROM bank_accounts WHERE account_number = $1
	`

	var (
		number        string
		initialAmount int64
	)
	err := r.db.QueryRow(headerQuery, accountNumber).Scan(&number, &initialAmount)
	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Account not found", "account_number", accountNumber)
			return nil, errors.ErrAccountNotFound
		}
		r.logger.Error("Failed to load account", "account_number", accountNumber, "error", err)
		return nil, errors.NewAppError(errors.PersistenceError, "failed to load account").WithDetails(err.Error())
	}

	transactions, err := r.transactions(accountNumber)
	if err != nil {
		return nil, err
	}

	return domain.ExistingAccount(number, transactions, initialAmount), nil
}

func (r *ledgerRepository) accountID(accountNumber string) (int64, error) {
	var id int64
	err := r.db.QueryRow("SELECT id FROM bank_accounts WHERE account_number = $1", accountNumber).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			r.logger.Warn("Account not found", "account_number", accountNumber)
			return 0, errors.ErrAccountNotFound
		}
		r.logger.Error("Failed to resolve account id", "account_number", accountNumber, "error", err)
		return 0, errors.NewAppError(errors.PersistenceError, "failed to resolve account id").WithDetails(err.Error())
	}
	return id, nil
}

// transactions loads the full history in insertion order. Row ids are
// assigned by insertion, so ordering by id preserves the append order and,
// since dates are monotonic per account, date-ascending order as well.
func (r *ledgerRepository) transactions(accountNumber string) ([]domain.Transaction, error) {
	query := `
		SELECT t.type, t.amount, t.date
		FROM transactions t
		JOIN bank_accounts a ON a.id = t.bank_account_id
		WHERE a.account_number = $1
		ORDER BY t.id
	`

	rows, err := r.db.Query(query, accountNumber)
	if err != nil {
		r.logger.Error("Failed to load transactions", "account_number", accountNumber, "error", err)
		return nil, errors.NewAppError(errors.PersistenceError, "failed to load transactions").WithDetails(err.Error())
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var (
			txType string
			tx     domain.Transaction
		)
		if err := rows.Scan(&txType, &tx.Amount, &tx.Date); err != nil {
			return nil, errors.NewAppError(errors.PersistenceError, "failed to scan transaction").WithDetails(err.Error())
		}
		tx.Type = domain.TransactionType(txType)
		transactions = append(transactions, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.NewAppError(errors.PersistenceError, "failed to iterate transactions").WithDetails(err.Error())
	}

	return transactions, nil
}
