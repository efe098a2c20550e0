package handler

import (
	"FrameVault/internal/dto"
	"FrameVault/internal/service"
	"FrameVault/model"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login authenticates form credentials and returns a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "username and password required"})
		return
	}
	user, err := h.auth.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "incorrect username or password"})
			return
		}
		internalError(c)
		return
	}
	token, err := h.auth.IssueToken(user)
	if err != nil {
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Signup registers a new user.
func (h *Handler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request"})
		return
	}
	if _, err := h.auth.Register(c.Request.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrDuplicateUser) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "user already exists"})
			return
		}
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Created user successfully!"})
}

// Me returns the authenticated user.
func (h *Handler) Me(c *gin.Context) {
	user := c.MustGet("user").(*model.User)
	c.JSON(http.StatusOK, dto.UserResponse{ID: user.ID, Username: user.Username})
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
}
