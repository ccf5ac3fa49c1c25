package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"member_web/internal/middleware"
	"member_web/internal/models"
	"member_web/internal/service"
)

// MemberHandler 處理會員相關的請求
type MemberHandler struct {
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Signup 處理 POST /members
func (h *MemberHandler) Signup(c *gin.Context) {
	var input models.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	member, err := h.memberService.Signup(c.Request.Context(), &input)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.Logger(c).WithField("member_id", member.ID).Info("member registered")
	c.JSON(http.StatusCreated, member)
}

// Me 處理 GET /members/me，以 token 中的電子郵件查詢會員
func (h *MemberHandler) Me(c *gin.Context) {
	email := c.GetString(middleware.ContextMemberEmail)

	member, err := h.memberService.FindMemberByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	if member == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
		return
	}

	c.JSON(http.StatusOK, member)
}
