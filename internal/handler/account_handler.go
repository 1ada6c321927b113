package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"bank-ledger/internal/domain"
	"bank-ledger/internal/errors"
	"bank-ledger/internal/service"
)

type AccountHandler struct {
	ledgerService *service.LedgerService
}

func NewAccountHandler(ledgerService *service.LedgerService) *AccountHandler {
	return &AccountHandler{
		ledgerService: ledgerService,
	}
}

type CreateAccountRequest struct {
	InitialAmount int64 `json:"initial_amount"`
}

type TransactionRequest struct {
	Amount int64 `json:"amount"`
}

type AccountResponse struct {
	AccountNumber string                `json:"account_number"`
	InitialAmount int64                 `json:"initial_amount"`
	Balance       int64                 `json:"balance"`
	Transactions  []TransactionResponse `json:"transactions"`
}

type TransactionResponse struct {
	Type   string    `json:"type"`
	Amount int64     `json:"amount"`
	Date   time.Time `json:"date"`
}

func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["account_number"]

	var req CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	account, err := h.ledgerService.CreateAccount(accountNumber, req.InitialAmount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.appendTransaction(w, r, h.ledgerService.Deposit)
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.appendTransaction(w, r, h.ledgerService.Withdraw)
}

func (h *AccountHandler) appendTransaction(
	w http.ResponseWriter,
	r *http.Request,
	apply func(accountNumber string, amount int64) (*domain.Transaction, error),
) {
	accountNumber := mux.Vars(r)["account_number"]

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.NewAppError(errors.InvalidInput, "invalid request body").WithDetails(err.Error()))
		return
	}

	tx, err := apply(accountNumber, req.Amount)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTransactionResponse(*tx))
}

func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["account_number"]

	account, err := h.ledgerService.GetAccount(accountNumber)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if account == nil {
		writeError(w, errors.NewAppErrorf(errors.NotFound, "account '%s' does not exist", accountNumber))
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func toAccountResponse(account *domain.Account) AccountResponse {
	transactions := account.Transactions()
	out := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, toTransactionResponse(tx))
	}

	return AccountResponse{
		AccountNumber: account.AccountNumber,
		InitialAmount: account.InitialAmount,
		Balance:       account.Balance(),
		Transactions:  out,
	}
}

func toTransactionResponse(tx domain.Transaction) TransactionResponse {
	return TransactionResponse{
		Type:   apiTransactionType(tx.Type),
		Amount: tx.Amount,
		Date:   tx.Date,
	}
}

// apiTransactionType maps the stored discriminator to the wire spelling.
func apiTransactionType(t domain.TransactionType) string {
	if t == domain.TransactionWithdraw {
		return "WithDraw"
	}
	return "Deposit"
}
