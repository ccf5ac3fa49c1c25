// Package cli 是會員服務的終端前端，以提示輸入填寫登入與註冊表單。
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"member_web/internal/client"
)

// ErrFormRejected 表示表單驗證或伺服器回應失敗，訊息已輸出給使用者
var ErrFormRejected = errors.New("form rejected")

type App struct {
	client *client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *client.Client, in io.Reader, out io.Writer) *App {
	return &App{client: c, reader: bufio.NewReader(in), out: out}
}

// Run 執行單一指令
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "signup":
		return a.Signup(ctx)
	case "login":
		return a.Login(ctx)
	default:
		a.usage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) usage() {
	fmt.Fprintln(a.out, "usage: member-cli <signup|login>")
}
