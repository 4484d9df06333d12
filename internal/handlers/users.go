package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Bloodcipher/Amara/internal/logger"
	"github.com/Bloodcipher/Amara/internal/repos"
	"github.com/Bloodcipher/Amara/internal/types"
)

type UserHandler struct {
	log   *logger.Logger
	users repos.UserRepo
}

func NewUserHandler(log *logger.Logger, users repos.UserRepo) *UserHandler {
	return &UserHandler{
		log:   log.With("handler", "UserHandler"),
		users: users,
	}
}

// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	rows, err := h.users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": rows})
}

// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
		Phone string `json:"phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email and role are required"})
		return
	}
	created, err := h.users.Create(c.Request.Context(), &types.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Phone:    req.Phone,
		IsActive: true,
	})
	if err != nil {
		if types.IsUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}
