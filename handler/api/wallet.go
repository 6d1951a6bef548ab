package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/pandodao/watch-wallet/core"
)

// handleImport godoc
// @Summary      Register a wallet by address and view key
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      api.ImportRequest  true  "wallet"
// @Success      201      {object}  api.ImportResponse
// @Failure      400      {object}  map[string]any
// @Router       /api/wallets [post]
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderError(w, &core.ValidationError{Reason: "malformed json body"})
		return
	}

	wallet, err := s.wallets.Import(r.Context(), core.ImportInput{
		Address:       req.Address,
		ViewKey:       req.ViewKey,
		RestoreHeight: req.RestoreHeight,
	})
	if err != nil {
		s.renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, ImportResponse{WalletID: wallet.ID})
}

// handleImportLocal godoc
// @Summary      Register a wallet restored from a local recovery phrase
// @Tags         wallets
// @Accept       json
// @Produce      json
// @Param        request  body      api.ImportLocalRequest  true  "wallet"
// @Success      201      {object}  api.ImportResponse
// @Failure      400      {object}  map[string]any
// @Router       /api/wallets/local [post]
func (s *Server) handleImportLocal(w http.ResponseWriter, r *http.Request) {
	var req ImportLocalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.renderError(w, &core.ValidationError{Reason: "malformed json body"})
		return
	}

	wallet, err := s.wallets.ImportLocal(r.Context(), core.ImportLocalInput{
		Label:         req.Label,
		RestoreHeight: req.RestoreHeight,
	})
	if err != nil {
		s.renderError(w, err)
		return
	}

	renderJSON(w, http.StatusCreated, ImportResponse{WalletID: wallet.ID})
}

// handleFind godoc
// @Summary      Show a wallet
// @Tags         wallets
// @Produce      json
// @Param        id   path      string  true  "wallet id"
// @Success      200  {object}  api.Wallet
// @Failure      404  {object}  map[string]any
// @Router       /api/wallets/{id} [get]
func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	wallet, err := s.wallets.Find(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, viewWallet(wallet))
}

// handleBalance godoc
// @Summary      Wallet balance
// @Tags         wallets
// @Produce      json
// @Param        id   path      string  true  "wallet id"
// @Success      200  {object}  core.Balance
// @Failure      404  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /api/wallets/{id}/balance [get]
func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.wallets.Balance(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, balance)
}

// handleTransactions godoc
// @Summary      Recent wallet transactions, newest first
// @Tags         wallets
// @Produce      json
// @Param        id     path      string  true   "wallet id"
// @Param        limit  query     int     false  "clamped to [1, 50]"  default(10)
// @Success      200    {array}   core.Transaction
// @Failure      404    {object}  map[string]any
// @Failure      503    {object}  map[string]any
// @Router       /api/wallets/{id}/transactions [get]
func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		s.renderError(w, err)
		return
	}

	txs, err := s.wallets.Transactions(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		s.renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, txs)
}

// handleSummary godoc
// @Summary      Wallet, balance and recent transactions with totals
// @Tags         wallets
// @Produce      json
// @Param        id     path      string  true   "wallet id"
// @Param        limit  query     int     false  "clamped to [1, 50]"  default(10)
// @Success      200    {object}  api.Summary
// @Failure      404    {object}  map[string]any
// @Failure      503    {object}  map[string]any
// @Router       /api/wallets/{id}/summary [get]
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		s.renderError(w, err)
		return
	}

	summary, err := s.wallets.Summary(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		s.renderError(w, err)
		return
	}

	renderJSON(w, http.StatusOK, viewSummary(summary))
}

// handleProvider godoc
// @Summary      Active chain provider
// @Tags         provider
// @Produce      json
// @Success      200  {object}  api.Provider
// @Router       /api/provider [get]
func (s *Server) handleProvider(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, Provider{
		Name:    s.chain.Name(),
		Network: s.chain.Network(),
	})
}

func parseLimit(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return core.DefaultTxLimit, nil
	}

	limit, err := strconv.Atoi(v)
	switch {
	case errors.Is(err, strconv.ErrRange) && strings.HasPrefix(v, "-"):
		return 1, nil
	case errors.Is(err, strconv.ErrRange):
		return core.MaxTxLimit, nil
	case err != nil:
		return 0, &core.ValidationError{Field: "limit", Reason: "must be an integer"}
	}

	return limit, nil
}
