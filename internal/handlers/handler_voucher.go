package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/services"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
	"github.com/ledgerworks/voucher_disbursement_app/internal/middleware"
)

// voucherHandler handles HTTP requests related to vouchers.
type voucherHandler struct {
	voucherSvc portssvc.VoucherSvcFacade
}

// registerVoucherRoutes registers routes rooted at /vouchers.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherSvc portssvc.VoucherSvcFacade) {
	h := &voucherHandler{voucherSvc: voucherSvc}

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:voucherID", h.getVoucher)
		vouchers.GET("/:voucherID/history", h.getVoucherHistory)
		vouchers.POST("/:voucherID/submit", h.submitVoucher)
		vouchers.POST("/:voucherID/approve", h.approveVoucher)
		vouchers.POST("/:voucherID/cancel", h.cancelVoucher)
		vouchers.POST("/:voucherID/void-request", h.requestVoid)
		vouchers.POST("/:voucherID/void-approve", h.approveVoid)
		vouchers.POST("/:voucherID/void-reject", h.rejectVoid)
	}
}

// createVoucher godoc
// @Summary Open a payment voucher
// @Description Creates a voucher in PENDING_LIAISON with a fresh company-scoped number
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherSvc.CreateVoucher(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create voucher")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List vouchers of a company
// @Tags vouchers
// @Produce json
// @Param companyID query string true "Company ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} dto.VoucherResponse
// @Security BearerAuth
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	vouchers, err := h.voucherSvc.ListVouchers(c.Request.Context(), params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list vouchers")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponses(vouchers))
}

// getVoucher godoc
// @Summary Get a voucher
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /vouchers/{voucherID} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	voucher, err := h.voucherSvc.GetVoucher(c.Request.Context(), c.Param("voucherID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// getVoucherHistory godoc
// @Summary Get the transition history of a voucher
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {array} domain.AuditEntry
// @Security BearerAuth
// @Router /vouchers/{voucherID}/history [get]
func (h *voucherHandler) getVoucherHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	entries, err := h.voucherSvc.GetVoucherHistory(c.Request.Context(), c.Param("voucherID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get voucher history")
		return
	}

	c.JSON(http.StatusOK, entries)
}

// submitVoucher godoc
// @Summary Submit a voucher for admin approval
// @Description Attaches bank/check details and moves PENDING_LIAISON to PENDING_ADMIN
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Param submission body dto.SubmitVoucherRequest true "Bank and check details"
// @Success 200 {object} dto.VoucherResponse
// @Security BearerAuth
// @Router /vouchers/{voucherID}/submit [post]
func (h *voucherHandler) submitVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitVoucher", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherSvc.SubmitVoucher(c.Request.Context(), actor, c.Param("voucherID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to submit voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// approveVoucher godoc
// @Summary Approve a voucher
// @Description Issues the voucher. Check vouchers spawn a check with the next number from the active checkbook; cash vouchers issue without one
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} map[string]interface{} "Voucher plus spawned check"
// @Failure 409 {object} map[string]string "No active checkbook or series exhausted"
// @Security BearerAuth
// @Router /vouchers/{voucherID}/approve [post]
func (h *voucherHandler) approveVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, check, err := h.voucherSvc.ApproveVoucher(c.Request.Context(), actor, c.Param("voucherID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve voucher")
		return
	}

	resp := gin.H{"voucher": dto.ToVoucherResponse(voucher)}
	if check != nil {
		resp["check"] = dto.ToCheckResponse(check)
	}
	c.JSON(http.StatusOK, resp)
}

// cancelVoucher godoc
// @Summary Cancel a voucher
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Security BearerAuth
// @Router /vouchers/{voucherID}/cancel [post]
func (h *voucherHandler) cancelVoucher(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherSvc.CancelVoucher(c.Request.Context(), actor, c.Param("voucherID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to cancel voucher")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// requestVoid godoc
// @Summary Request a void of an issued voucher
// @Tags vouchers
// @Accept json
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Param request body dto.VoidVoucherRequest true "Void reason"
// @Success 200 {object} dto.VoucherResponse
// @Security BearerAuth
// @Router /vouchers/{voucherID}/void-request [post]
func (h *voucherHandler) requestVoid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.VoidVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RequestVoid", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherSvc.RequestVoid(c.Request.Context(), actor, c.Param("voucherID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to request void")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// approveVoid godoc
// @Summary Approve a pending void
// @Description Voids the voucher and its linked check atomically
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Security BearerAuth
// @Router /vouchers/{voucherID}/void-approve [post]
func (h *voucherHandler) approveVoid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherSvc.ApproveVoid(c.Request.Context(), actor, c.Param("voucherID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to approve void")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// rejectVoid godoc
// @Summary Reject a pending void
// @Tags vouchers
// @Produce json
// @Param voucherID path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Security BearerAuth
// @Router /vouchers/{voucherID}/void-reject [post]
func (h *voucherHandler) rejectVoid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	voucher, err := h.voucherSvc.RejectVoid(c.Request.Context(), actor, c.Param("voucherID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to reject void")
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
