package forms

import (
	"context"

	"member_web/internal/client"
)

type LoginForm struct {
	Email    string
	Password string

	// OnSubmit 負責實際的 API 通訊
	OnSubmit func(ctx context.Context, data client.LoginFormData) error

	IsLoading bool
	Error     string

	validationError string
}

// Submit 驗證必填欄位後呼叫 OnSubmit
func (f *LoginForm) Submit(ctx context.Context) {
	if f.IsLoading {
		return
	}
	f.Error = ""
	f.validationError = checkRequired(f.Email, f.Password)
	if f.validationError != "" || f.OnSubmit == nil {
		return
	}

	f.IsLoading = true
	defer func() { f.IsLoading = false }()

	if err := f.OnSubmit(ctx, client.LoginFormData{Email: f.Email, Password: f.Password}); err != nil {
		f.Error = errorMessage(err)
	}
}

// DisplayError 回傳要顯示的錯誤，伺服器錯誤優先
func (f *LoginForm) DisplayError() string {
	if f.Error != "" {
		return f.Error
	}
	return f.validationError
}
