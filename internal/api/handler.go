package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/SuperTinCan/CapitalOneAssistant/internal/store"
)

// defaultRecentLimit bounds transaction listings unless the caller asks for
// a different window.
const defaultRecentLimit = 5

// Handler serves read-only views over a loaded dataset.
type Handler struct {
	store *store.Store
}

// NewHandler creates a Handler backed by the given store.
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// ─── GET /api/v1/accounts ─────────────────────────────────────────────────────

// ListAccounts returns every account in export order.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	ok(w, h.store.Accounts())
}

// ─── GET /api/v1/accounts/{id} ────────────────────────────────────────────────

// GetAccount retrieves a single account by user ID.
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	acct, exists := h.store.GetAccount(id)
	if !exists {
		notFound(w, fmt.Sprintf("account '%s' not found", id))
		return
	}
	ok(w, acct)
}

// ─── GET /api/v1/accounts/{id}/transactions ───────────────────────────────────

// RecentTransactions returns an account's transactions newest-first, each
// left-joined with its fraud score (0.0 / false when unscored).
//
// Query params:
//
//	limit — maximum rows to return (default: 5, 0 = all)
func (h *Handler) RecentTransactions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, exists := h.store.GetAccount(id); !exists {
		notFound(w, fmt.Sprintf("account '%s' not found", id))
		return
	}

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			badRequest(w, "INVALID_PARAM", "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	ok(w, h.store.RecentTransactions(id, limit))
}

// ─── GET /api/v1/summary ──────────────────────────────────────────────────────

// GetSummary returns headline metrics for the loaded dataset.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ok(w, h.store.Summarize())
}
