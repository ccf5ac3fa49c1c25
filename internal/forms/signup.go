package forms

import (
	"context"
	"unicode/utf8"

	"member_web/internal/client"
)

type SignupForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string

	OnSubmit   func(ctx context.Context, data client.SignupFormData) (*client.SignupResponse, error)
	OnComplete func(resp *client.SignupResponse)

	IsLoading bool
	Error     string

	validationError string
}

// Submit 執行本地驗證，通過後才呼叫 OnSubmit
// 成功且有回應時呼叫 OnComplete，失敗時錯誤寫入 Error
// 每次提交都會先清掉前一次的錯誤
func (f *SignupForm) Submit(ctx context.Context) {
	if f.IsLoading {
		return
	}
	f.validationError = ""
	f.Error = ""

	if msg := checkRequired(f.Email, f.Name, f.Password, f.ConfirmPassword); msg != "" {
		f.validationError = msg
		return
	}
	if f.Password != f.ConfirmPassword {
		f.validationError = MsgPasswordMismatch
		return
	}
	if utf8.RuneCountInString(f.Password) < MinPasswordLength {
		f.validationError = MsgPasswordTooShort
		return
	}
	if len(f.Password) > MaxPasswordBytes {
		f.validationError = MsgPasswordTooLong
		return
	}
	if f.OnSubmit == nil {
		return
	}

	f.IsLoading = true
	defer func() { f.IsLoading = false }()

	resp, err := f.OnSubmit(ctx, client.SignupFormData{Name: f.Name, Email: f.Email, Password: f.Password})
	if err != nil {
		f.Error = errorMessage(err)
		return
	}
	if resp != nil && f.OnComplete != nil {
		f.OnComplete(resp)
	}
}

// ValidationError 回傳本地驗證錯誤
func (f *SignupForm) ValidationError() string {
	return f.validationError
}

// DisplayError 回傳要顯示的錯誤，伺服器錯誤優先
func (f *SignupForm) DisplayError() string {
	if f.Error != "" {
		return f.Error
	}
	return f.validationError
}
