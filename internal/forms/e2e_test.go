package forms_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"member_web/internal/api"
	"member_web/internal/client"
	"member_web/internal/forms"
	"member_web/internal/repository"
	"member_web/internal/service"
	"member_web/internal/storage/storagetest"
	"member_web/pkg/config"
)

type capturedRequest struct {
	method string
	path   string
	body   string
}

// newBackend 啟動完整的 API 並記錄收到的每個請求
func newBackend(t *testing.T) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.Out = io.Discard

	repos := repository.NewRepositories(storagetest.NewSQLiteDB(t))
	services := service.NewServices(repos, config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour}, log)
	router := api.NewRouter(config.ServerConfig{AllowedOrigin: "http://localhost:3001"}, services, log)

	var mu sync.Mutex
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(body))
		mu.Lock()
		captured = append(captured, capturedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), captured...)
	}
}

func TestSignupForm_EndToEnd(t *testing.T) {
	srv, requests := newBackend(t)
	apiClient := client.New(srv.URL)

	var created *client.SignupResponse
	form := forms.SignupForm{
		Name: "Hong", Email: "hong@test.com", Password: "1234", ConfirmPassword: "1234",
		OnSubmit:   apiClient.Signup,
		OnComplete: func(resp *client.SignupResponse) { created = resp },
	}
	form.Submit(context.Background())

	require.Empty(t, form.DisplayError())
	require.NotNil(t, created)
	assert.Equal(t, "hong@test.com", created.Email)
	assert.NotZero(t, created.ID)

	got := requests()
	require.Len(t, got, 1)
	assert.Equal(t, http.MethodPost, got[0].method)
	assert.Equal(t, "/members", got[0].path)
	assert.JSONEq(t, `{"name":"Hong","email":"hong@test.com","password":"1234"}`, got[0].body)
}

func TestSignupForm_EndToEndShortPassword(t *testing.T) {
	srv, requests := newBackend(t)

	form := forms.SignupForm{
		Name: "Hong", Email: "hong@test.com", Password: "123", ConfirmPassword: "123",
		OnSubmit: client.New(srv.URL).Signup,
	}
	form.Submit(context.Background())

	assert.Empty(t, requests())
	assert.Equal(t, "비밀번호는 4자 이상이어야 합니다", form.DisplayError())
}

func TestSignupForm_EndToEndDuplicate(t *testing.T) {
	srv, _ := newBackend(t)
	apiClient := client.New(srv.URL)

	for i := 0; i < 2; i++ {
		form := forms.SignupForm{
			Name: "Hong", Email: "hong@test.com", Password: "1234", ConfirmPassword: "1234",
			OnSubmit: apiClient.Signup,
		}
		form.Submit(context.Background())
		if i == 1 {
			assert.Equal(t, "email already registered", form.DisplayError())
		}
	}
}

func TestLoginForm_EndToEnd(t *testing.T) {
	srv, _ := newBackend(t)
	apiClient := client.New(srv.URL)

	_, err := apiClient.Signup(context.Background(), client.SignupFormData{Name: "Hong", Email: "hong@test.com", Password: "1234"})
	require.NoError(t, err)

	var token string
	form := forms.LoginForm{
		Email: "hong@test.com", Password: "1234",
		OnSubmit: func(ctx context.Context, data client.LoginFormData) error {
			resp, err := apiClient.Login(ctx, data)
			if err != nil {
				return err
			}
			token = resp.AccessToken
			return nil
		},
	}
	form.Submit(context.Background())

	require.Empty(t, form.DisplayError())
	me, err := apiClient.Me(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "Hong", me.Name)
}
