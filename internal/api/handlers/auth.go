package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"member_web/internal/service"
	"member_web/internal/utils"
)

// AuthHandler 處理與認證相關的請求
type AuthHandler struct {
	memberService *service.MemberService
	tokens        *utils.TokenIssuer
}

// NewAuthHandler 創建一個新的 AuthHandler 實例
func NewAuthHandler(memberService *service.MemberService, tokens *utils.TokenIssuer) *AuthHandler {
	return &AuthHandler{memberService: memberService, tokens: tokens}
}

// LoginInput 定義登入請求的結構
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse 定義登入成功的回應
type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	User        LoginUser `json:"user"`
}

// Login 處理 POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	member, err := h.memberService.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(member.ID, member.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		AccessToken: token,
		User:        LoginUser{ID: member.ID, Name: member.Name, Email: member.Email},
	})
}
