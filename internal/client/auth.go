package client

import (
	"context"
	"net/http"
	"time"
)

type LoginFormData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	User        LoginUser `json:"user"`
}

type SignupFormData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupResponse 是新建立的會員
type SignupResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *Client) Login(ctx context.Context, data LoginFormData) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.request(ctx, http.MethodPost, "/auth/login", data, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Signup(ctx context.Context, data SignupFormData) (*SignupResponse, error) {
	var resp SignupResponse
	if err := c.request(ctx, http.MethodPost, "/members", data, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me 以 access token 取得目前登入的會員
func (c *Client) Me(ctx context.Context, accessToken string) (*SignupResponse, error) {
	var resp SignupResponse
	header := http.Header{"Authorization": {"Bearer " + accessToken}}
	if err := c.request(ctx, http.MethodGet, "/members/me", nil, header, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
