package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cyclerise/cyclerise-backend/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		USN      string `json:"usn"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Branch   string `json:"branch"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := ah.authService.Register(c.Request.Context(), req.USN, req.Email, req.Password, req.Branch)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondCreated(c, gin.H{
		"message": "User registered successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		USN      string `json:"usn"`
		Password string `json:"password"`
		Branch   string `json:"branch"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := ah.authService.Login(c.Request.Context(), req.USN, req.Password, req.Branch)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"message": "Login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (ah *AuthHandler) AdminLogin(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := ah.authService.AdminLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"message": "Admin login successful",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (ah *AuthHandler) SwitchBranch(c *gin.Context) {
	var req struct {
		NewBranch string `json:"newBranch"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	result, err := ah.authService.SwitchBranch(c.Request.Context(), req.NewBranch)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"message": "Branch switched successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

func (ah *AuthHandler) GetProfile(c *gin.Context) {
	user, err := ah.authService.GetProfile(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, user)
}

func (ah *AuthHandler) ListUsers(c *gin.Context) {
	users, err := ah.authService.ListUsers(c.Request.Context())
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"items": users, "total": len(users)})
}
