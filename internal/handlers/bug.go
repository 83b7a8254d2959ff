package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyclerise/cyclerise-backend/internal/services"
)

type BugHandler struct {
	bugService services.BugService
}

func NewBugHandler(bugService services.BugService) *BugHandler {
	return &BugHandler{bugService: bugService}
}

func (h *BugHandler) Create(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PageURL     string `json:"pageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	bug, err := h.bugService.Create(c.Request.Context(), req.Title, req.Description, req.PageURL)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{"message": "Bug reported", "bug": bug})
}

func (h *BugHandler) List(c *gin.Context) {
	items, err := h.bugService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": items})
}

func (h *BugHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bug id"})
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	bug, err := h.bugService.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Bug updated", "bug": bug})
}
