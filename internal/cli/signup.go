package cli

import (
	"context"
	"fmt"

	"member_web/internal/client"
	"member_web/internal/forms"
)

func (a *App) Signup(ctx context.Context) error {
	form := forms.SignupForm{
		OnSubmit: a.client.Signup,
		OnComplete: func(resp *client.SignupResponse) {
			fmt.Fprintf(a.out, "회원가입 완료: %s (%s)\n", resp.Name, resp.Email)
		},
	}

	var err error
	if form.Name, err = GetSimpleText(a.reader, "이름", a.out); err != nil {
		return err
	}
	if form.Email, err = GetSimpleText(a.reader, "이메일", a.out); err != nil {
		return err
	}
	if form.Password, err = GetPassword("비밀번호", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = GetPassword("비밀번호 확인", a.out); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "가입 중...")
	form.Submit(ctx)

	if msg := form.DisplayError(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return ErrFormRejected
	}
	return nil
}
