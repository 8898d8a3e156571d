package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	portssvc "github.com/sevacare/hospital_finance_app/internal/core/ports/services"
	"github.com/sevacare/hospital_finance_app/internal/dto"
	"github.com/sevacare/hospital_finance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerHandler handles HTTP requests for accounts, entries and transfers.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers routes for accounts, entries and transfers.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	entries := rg.Group("/entries")
	{
		entries.POST("", h.recordEntry)
		entries.GET("/:id", h.getEntry)
		entries.POST("/:id/reverse", h.reverseEntry)
		entries.GET("/number/:txnNumber", h.getEntryByNumber)
	}

	rg.POST("/transfers", h.transfer)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/entries", h.listAccountEntries)
		accounts.GET("/:id/balance", h.getBalanceAsOf)
	}
}

func (h *ledgerHandler) recordEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	entry, err := h.ledgerService.RecordEntry(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to record entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *ledgerHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.ledgerService.GetEntryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *ledgerHandler) getEntryByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entry, err := h.ledgerService.GetEntryByTxnNumber(c.Request.Context(), c.Param("txnNumber"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve entry")
		return
	}
	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

func (h *ledgerHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req struct {
		Narration string `json:"narration"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for reverseEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	reversal, err := h.ledgerService.ReverseEntry(c.Request.Context(), c.Param("id"), req.Narration, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to reverse entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEntryResponse(reversal))
}

func (h *ledgerHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	actorID, ok := actorOrAbort(c, logger)
	if !ok {
		return
	}

	outEntry, inEntry, err := h.ledgerService.Transfer(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, logger, err, "Failed to transfer funds")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"outEntry": dto.ToEntryResponse(outEntry),
		"inEntry":  dto.ToEntryResponse(inEntry),
	})
}

func (h *ledgerHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.ledgerService.ListAccounts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list accounts")
		return
	}
	out := make([]dto.AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = dto.ToAccountResponse(&accounts[i])
	}
	c.JSON(http.StatusOK, gin.H{"accounts": out})
}

func (h *ledgerHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	account, err := h.ledgerService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

func (h *ledgerHandler) listAccountEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	entries, token, err := h.ledgerService.ListEntries(c.Request.Context(), c.Param("id"), limit, nextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list entries")
		return
	}
	c.JSON(http.StatusOK, dto.ListEntriesResponse{
		Entries:   dto.ToEntryResponses(entries),
		NextToken: token,
	})
}

func (h *ledgerHandler) getBalanceAsOf(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	asOf, ok := parseDateQuery(c, "asOf", time.Now().UTC())
	if !ok {
		return
	}

	accountID := c.Param("id")
	balance, err := h.ledgerService.BalanceAsOf(c.Request.Context(), accountID, asOf)
	if err != nil {
		respondError(c, logger, err, "Failed to compute balance")
		return
	}

	account, err := h.ledgerService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		AccountID: accountID,
		Kind:      string(account.Kind),
		AsOf:      asOf,
		Balance:   balance,
	})
}
