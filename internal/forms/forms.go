// Package forms 實作登入與註冊表單的狀態與本地驗證。
//
// 表單本身不發送請求，提交時呼叫注入的 OnSubmit；
// 任何失敗都寫入 Error，由呈現層顯示。
package forms

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"member_web/internal/client"
)

// MinPasswordLength 與伺服器端 binding:"min=4" 一致
const MinPasswordLength = 4

// MaxPasswordBytes 與伺服器端的 bcrypt 上限一致
const MaxPasswordBytes = 72

const (
	MsgRequired         = "모든 항목을 입력하세요"
	MsgInvalidEmail     = "올바른 이메일 주소를 입력하세요"
	MsgPasswordMismatch = "비밀번호가 일치하지 않습니다"
	MsgPasswordTooShort = "비밀번호는 4자 이상이어야 합니다"
	MsgPasswordTooLong  = "비밀번호는 72바이트 이하여야 합니다"
)

var validate = validator.New()

// checkRequired 對應 HTML 的 required 與 type=email
func checkRequired(email string, values ...string) string {
	for _, v := range append(values, email) {
		if v == "" {
			return MsgRequired
		}
	}
	if err := validate.Var(email, "email"); err != nil {
		return MsgInvalidEmail
	}
	return ""
}

// errorMessage 取出要顯示給使用者的錯誤訊息
func errorMessage(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
