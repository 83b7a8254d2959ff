package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclerise/cyclerise-backend/internal/apierr"
)

// RespondServiceError maps a service error onto its HTTP status, keeping the
// flat {"error": msg} body the frontend expects.
func RespondServiceError(c *gin.Context, err error) {
	status, _ := apierr.StatusOf(err)
	msg := "Something went wrong!"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, gin.H{"error": msg})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}
