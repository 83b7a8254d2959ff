package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/cyclerise/cyclerise-backend/internal/services"
)

type ProgressHandler struct {
	progressService services.ProgressService
}

func NewProgressHandler(progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

func (h *ProgressHandler) GetUserProgress(c *gin.Context) {
	progress, err := h.progressService.GetUserProgress(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, progress)
}

func (h *ProgressHandler) GetProgressByBranch(c *gin.Context) {
	progress, err := h.progressService.GetProgressByBranch(c.Request.Context(), c.Param("branch"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, progress)
}
