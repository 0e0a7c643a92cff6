package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/mentorcrm/internal/domain/model"
	"github.com/polkiloo/mentorcrm/internal/server/http/dto"
	"github.com/polkiloo/mentorcrm/internal/server/http/middleware"
)

// AuthHandler processes login and profile completion.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	operator, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, Operator: operator})
}

// Me handles GET /api/me.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentOperator(c))
}

// Profile handles POST /api/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	var req dto.ProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile := model.Operator{
		Name:     req.Name,
		Surname:  req.Surname,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	}
	saved, err := h.facade.CompleteProfile(c.Request.Context(), CurrentOperator(c), profile)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}
