package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/services"
)

type SubjectHandler struct {
	log            *logger.Logger
	subjectService services.SubjectService
}

func NewSubjectHandler(baseLog *logger.Logger, subjectService services.SubjectService) *SubjectHandler {
	return &SubjectHandler{
		log:            baseLog.With("handler", "SubjectHandler"),
		subjectService: subjectService,
	}
}

func (h *SubjectHandler) GetSubjectsByBranch(c *gin.Context) {
	branch := c.Param("branch")
	cycle := c.Query("cycle")

	subjects, err := h.subjectService.GetSubjectsByBranch(c.Request.Context(), branch, cycle)
	if err != nil {
		h.log.Error("GetSubjectsByBranch failed", "error", err, "branch", branch)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, subjects)
}

func (h *SubjectHandler) GetSubjectByID(c *gin.Context) {
	subjectID, err := uuid.Parse(c.Param("subjectId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}

	subject, err := h.subjectService.GetSubjectByID(c.Request.Context(), subjectID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, subject)
}

func (h *SubjectHandler) ToggleQuestionCompletion(c *gin.Context) {
	var req struct {
		SubjectID    string `json:"subjectId"`
		ModuleNumber int    `json:"moduleNumber"`
		QuestionID   string `json:"questionId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	subjectID, err := uuid.Parse(req.SubjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subject id"})
		return
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
		return
	}

	question, err := h.subjectService.ToggleQuestionCompletion(c.Request.Context(), subjectID, req.ModuleNumber, questionID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Question updated", "question": question})
}
