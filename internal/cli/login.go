package cli

import (
	"context"
	"fmt"

	"member_web/internal/client"
	"member_web/internal/forms"
)

func (a *App) Login(ctx context.Context) error {
	form := forms.LoginForm{
		OnSubmit: func(ctx context.Context, data client.LoginFormData) error {
			resp, err := a.client.Login(ctx, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "로그인 성공: %s\n", resp.User.Name)
			fmt.Fprintf(a.out, "access token: %s\n", resp.AccessToken)
			return nil
		},
	}

	var err error
	if form.Email, err = GetSimpleText(a.reader, "이메일", a.out); err != nil {
		return err
	}
	if form.Password, err = GetPassword("비밀번호", a.out); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "로그인 중...")
	form.Submit(ctx)

	if msg := form.DisplayError(); msg != "" {
		fmt.Fprintln(a.out, msg)
		return ErrFormRejected
	}
	return nil
}
