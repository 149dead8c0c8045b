package public

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myseringan/texnokross-bolt-sub000/internal/http/response"
	"github.com/myseringan/texnokross-bolt-sub000/internal/models"
	"github.com/myseringan/texnokross-bolt-sub000/internal/router/middleware"
	"github.com/myseringan/texnokross-bolt-sub000/internal/service"
)

type authView struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

type registerRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// Register creates a customer account.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	user, token, err := h.Auth.Register(req.Phone, req.Name, req.Password)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, authView{User: user, Token: token})
}

type loginRequest struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a customer. An unregistered phone answers 404 so the
// storefront can switch to the registration flow.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	user, token, err := h.Auth.Login(req.Phone, req.Password)
	if errors.Is(err, service.ErrNotFound) {
		response.Error(c, http.StatusNotFound, "user_not_found")
		return
	}
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, authView{User: user, Token: token})
}

type forgotPasswordRequest struct {
	Phone string `json:"phone" binding:"required"`
}

// ForgotPassword issues a password recovery code. In debug mode the code is
// echoed in the response; in release it only reaches the delivery channel.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	code, err := h.Auth.ForgotPassword(req.Phone)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	if h.Cfg.Server.Mode == "debug" {
		response.Success(c, gin.H{"debug_code": code})
		return
	}
	response.Success(c, nil)
}

type resetPasswordRequest struct {
	Phone       string `json:"phone" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword consumes a recovery code and sets a new password.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	if err := h.Auth.ResetPassword(req.Phone, req.Code, req.NewPassword); err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

type changePasswordRequest struct {
	Phone       string `json:"phone" binding:"required"`
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the current password and replaces it.
func (h *Handler) ChangePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}
	if err := h.Auth.ChangePasswordByPhone(req.Phone, req.OldPassword, req.NewPassword); err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, nil)
}

// Me answers the authenticated customer's account.
func (h *Handler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}
	user, err := h.Auth.GetUser(userID)
	if err != nil {
		h.RespondError(c, err)
		return
	}
	response.Success(c, user)
}
