package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"product-portal/internal/service"
	mdw "product-portal/internal/transport/http/middleware"
	resp "product-portal/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type registerReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"omitempty,min=2,max=100"`
	Role     string `json:"role" binding:"omitempty,oneof=admin user"`
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerReq
	if !bindJSON(c, &in) {
		return
	}
	u, tok, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
		Role:     in.Role,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, http.StatusCreated, "User registered successfully", gin.H{"user": u, "token": tok})
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginReq
	if !bindJSON(c, &in) {
		return
	}
	u, tok, err := h.svc.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	resp.OK(c, http.StatusOK, "Login successful", gin.H{"user": u, "token": tok})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u := mdw.CurrentUser(c)
	resp.OK(c, http.StatusOK, "", gin.H{"user": u})
}
