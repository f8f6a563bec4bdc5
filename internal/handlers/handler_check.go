package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/services"
	"github.com/ledgerworks/voucher_disbursement_app/internal/dto"
	"github.com/ledgerworks/voucher_disbursement_app/internal/middleware"
)

// checkHandler handles HTTP requests related to individual checks.
type checkHandler struct {
	checkSvc portssvc.CheckSvcFacade
}

// registerCheckRoutes registers routes rooted at /checks.
func registerCheckRoutes(rg *gin.RouterGroup, checkSvc portssvc.CheckSvcFacade) {
	h := &checkHandler{checkSvc: checkSvc}

	checks := rg.Group("/checks")
	{
		checks.GET("/:checkID", h.getCheck)
		checks.POST("/:checkID/status", h.setCheckStatus)
		checks.PUT("/:checkID", h.updateCheck)
	}
}

// getCheck godoc
// @Summary Get a check
// @Tags checks
// @Produce json
// @Param checkID path string true "Check ID"
// @Success 200 {object} dto.CheckResponse
// @Failure 404 {object} map[string]string "Not found"
// @Security BearerAuth
// @Router /checks/{checkID} [get]
func (h *checkHandler) getCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	check, err := h.checkSvc.GetCheck(c.Request.Context(), c.Param("checkID"))
	if err != nil {
		respondServiceError(c, logger, err, "Failed to get check")
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResponse(check))
}

// setCheckStatus godoc
// @Summary Transition a check
// @Description Moves a check to CLAIMED, CLEARED, or BOUNCED. Clearing posts the withdrawal ledger row.
// @Tags checks
// @Accept json
// @Produce json
// @Param checkID path string true "Check ID"
// @Param transition body dto.UpdateCheckStatusRequest true "Target status and details"
// @Success 200 {object} dto.CheckResponse
// @Failure 422 {object} map[string]string "Invalid transition"
// @Failure 409 {object} map[string]string "Lost race on status"
// @Security BearerAuth
// @Router /checks/{checkID}/status [post]
func (h *checkHandler) setCheckStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCheckStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetCheckStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	check, err := h.checkSvc.SetCheckStatus(c.Request.Context(), actor, c.Param("checkID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update check status")
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResponse(check))
}

// updateCheck godoc
// @Summary Edit a check's issue date
// @Description Edits date_issued; on a CLEARED check the ledger row follows
// @Tags checks
// @Accept json
// @Produce json
// @Param checkID path string true "Check ID"
// @Param check body dto.UpdateCheckRequest true "New issue date"
// @Success 200 {object} dto.CheckResponse
// @Security BearerAuth
// @Router /checks/{checkID} [put]
func (h *checkHandler) updateCheck(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCheck", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	check, err := h.checkSvc.UpdateIssueDate(c.Request.Context(), actor, c.Param("checkID"), req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update check")
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResponse(check))
}
