package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/ledgerworks/voucher_disbursement_app/internal/core/ports/services"
	"github.com/ledgerworks/voucher_disbursement_app/internal/middleware"
)

// checkbookHandler handles HTTP requests addressed at individual checkbooks.
type checkbookHandler struct {
	checkbookSvc portssvc.CheckbookSvcFacade
}

// registerCheckbookRoutes registers routes rooted at /checkbooks.
func registerCheckbookRoutes(rg *gin.RouterGroup, checkbookSvc portssvc.CheckbookSvcFacade) {
	h := &checkbookHandler{checkbookSvc: checkbookSvc}

	checkbooks := rg.Group("/checkbooks")
	{
		checkbooks.POST("/:checkbookID/close", h.closeCheckbook)
	}
}

// closeCheckbook godoc
// @Summary Close a checkbook
// @Description Retires a checkbook early; unissued numbers in its range are abandoned
// @Tags checkbooks
// @Produce json
// @Param checkbookID path string true "Checkbook ID"
// @Success 204 "No content"
// @Failure 422 {object} map[string]string "Already closed"
// @Security BearerAuth
// @Router /checkbooks/{checkbookID}/close [post]
func (h *checkbookHandler) closeCheckbook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.checkbookSvc.CloseCheckbook(c.Request.Context(), actor, c.Param("checkbookID")); err != nil {
		respondServiceError(c, logger, err, "Failed to close checkbook")
		return
	}

	c.Status(http.StatusNoContent)
}
