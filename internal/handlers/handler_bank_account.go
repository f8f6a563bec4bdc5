package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/services"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
	"github.com/ledgerworks/voucher_disbursement_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// bankAccountHandler handles HTTP requests related to bank accounts and their
// nested resources.
type bankAccountHandler struct {
	bankAccountSvc portssvc.BankAccountSvcFacade
	checkbookSvc   portssvc.CheckbookSvcFacade
	ledgerSvc      portssvc.LedgerSvcFacade
	checkSvc       portssvc.CheckSvcFacade
}

// registerBankRoutes registers routes rooted at /banks.
func registerBankRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := &bankAccountHandler{
		bankAccountSvc: services.BankAccountSvc,
		checkbookSvc:   services.CheckbookSvc,
		ledgerSvc:      services.LedgerSvc,
		checkSvc:       services.CheckSvc,
	}

	banks := rg.Group("/banks")
	{
		banks.POST("", h.createBankAccount)
		banks.GET("", h.listBankAccounts)
		banks.GET("/:bankAccountID", h.getBankAccount)
		banks.POST("/:bankAccountID/checkbooks", h.allocateCheckbook)
		banks.GET("/:bankAccountID/checkbooks", h.listCheckbooks)
		banks.POST("/:bankAccountID/transactions", h.recordTransaction)
		banks.GET("/:bankAccountID/transactions", h.listTransactions)
		banks.GET("/:bankAccountID/checks", h.listChecks)
	}
}

// createBankAccount godoc
// @Summary Register a bank account
// @Description Registers a bank account with its opening balance
// @Tags banks
// @Accept json
// @Produce json
// @Param account body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /banks [post]
func (h *bankAccountHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.bankAccountSvc.CreateBankAccount(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create bank account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(account, decimal.Zero))
}

// listBankAccounts godoc
// @Summary List bank accounts of a company
// @Tags banks
// @Produce json
// @Param companyID query string true "Company ID"
// @Success 200 {array} dto.BankAccountResponse
// @Security BearerAuth
// @Router /banks [get]
func (h *bankAccountHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID := c.Query("companyID")
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "companyID query parameter is required"})
		return
	}

	responses, err := h.bankAccountSvc.ListBankAccounts(c.Request.Context(), companyID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bank accounts")
		return
	}

	c.JSON(http.StatusOK, responses)
}

// getBankAccount godoc
// @Summary Get a bank account
// @Description Retrieves a bank account with its current and unclaimed balances
// @Tags banks
// @Produce json
// @Param bankAccountID path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /banks/{bankAccountID} [get]
func (h *bankAccountHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bankAccountID := c.Param("bankAccountID")

	account, unclaimed, err := h.bankAccountSvc.GetBankAccount(c.Request.Context(), bankAccountID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get bank account")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(account, unclaimed))
}

// allocateCheckbook godoc
// @Summary Allocate a checkbook series
// @Description Registers a new ACTIVE check-number series against a bank account
// @Tags checkbooks
// @Accept json
// @Produce json
// @Param bankAccountID path string true "Bank account ID"
// @Param checkbook body dto.AllocateCheckbookRequest true "Series bounds"
// @Success 201 {object} dto.CheckbookResponse
// @Failure 400 {object} map[string]string "Invalid or overlapping series range"
// @Failure 409 {object} map[string]string "Active checkbook already exists"
// @Security BearerAuth
// @Router /banks/{bankAccountID}/checkbooks [post]
func (h *bankAccountHandler) allocateCheckbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AllocateCheckbookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AllocateCheckbook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	checkbook, err := h.checkbookSvc.AllocateCheckbook(c.Request.Context(), actor, c.Param("bankAccountID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to allocate checkbook")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckbookResponse(checkbook))
}

// listCheckbooks godoc
// @Summary List checkbooks of a bank account
// @Tags checkbooks
// @Produce json
// @Param bankAccountID path string true "Bank account ID"
// @Success 200 {array} dto.CheckbookResponse
// @Security BearerAuth
// @Router /banks/{bankAccountID}/checkbooks [get]
func (h *bankAccountHandler) listCheckbooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checkbooks, err := h.checkbookSvc.ListCheckbooks(c.Request.Context(), c.Param("bankAccountID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list checkbooks")
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckbookResponses(checkbooks))
}

// recordTransaction godoc
// @Summary Record a ledger entry
// @Description Posts a deposit, withdrawal, or bounced deposit against the account passbook
// @Tags transactions
// @Accept json
// @Produce json
// @Param bankAccountID path string true "Bank account ID"
// @Param transaction body dto.RecordTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Security BearerAuth
// @Router /banks/{bankAccountID}/transactions [post]
func (h *bankAccountHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.ledgerSvc.RecordTransaction(c.Request.Context(), actor, c.Param("bankAccountID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List passbook rows
// @Description Retrieves ledger rows in passbook order with token pagination and the current balance
// @Tags transactions
// @Produce json
// @Param bankAccountID path string true "Bank account ID"
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /banks/{bankAccountID}/transactions [get]
func (h *bankAccountHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.ledgerSvc.ListTransactions(c.Request.Context(), c.Param("bankAccountID"), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listChecks godoc
// @Summary List checks drawn against a bank account
// @Tags checks
// @Produce json
// @Param bankAccountID path string true "Bank account ID"
// @Success 200 {array} dto.CheckResponse
// @Security BearerAuth
// @Router /banks/{bankAccountID}/checks [get]
func (h *bankAccountHandler) listChecks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	checks, err := h.checkSvc.ListChecksByBankAccount(c.Request.Context(), c.Param("bankAccountID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list checks")
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResponses(checks))
}
