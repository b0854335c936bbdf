package webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func mustValidator(t *testing.T, cfg SecurityConfig) *validator {
	t.Helper()
	v, err := newValidator(cfg)
	if err != nil {
		t.Fatalf("newValidator: %v", err)
	}
	return v
}

func TestCheckSecret(t *testing.T) {
	v := mustValidator(t, SecurityConfig{Secret: "s3cret"})
	if err := v.checkSecret("s3cret"); err != nil {
		t.Errorf("expected match, got %v", err)
	}
	if err := v.checkSecret("wrong"); !errors.Is(err, ErrSecretMismatch) {
		t.Errorf("expected ErrSecretMismatch, got %v", err)
	}
	if err := v.checkSecret(""); err == nil {
		t.Error("expected error for missing secret")
	}

	open := mustValidator(t, SecurityConfig{})
	if err := open.checkSecret(""); err != nil {
		t.Errorf("no configured secret should pass, got %v", err)
	}
}

func TestCheckIP(t *testing.T) {
	v := mustValidator(t, SecurityConfig{AllowedIPs: []string{"10.0.0.1", " 192.168.1.0/24", "2001:db8::/32"}})

	tests := []struct {
		name    string
		ip      string
		wantErr bool
	}{
		{"Exact match", "10.0.0.1", false},
		{"CIDR match", "192.168.1.77", false},
		{"IPv4-mapped IPv6", "::ffff:10.0.0.1", false},
		{"IPv6 CIDR", "2001:db8::5", false},
		{"Not listed", "172.16.0.1", true},
		{"Unparseable", "not-an-ip", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.checkIP(tt.ip)
			if (err != nil) != tt.wantErr {
				t.Errorf("checkIP(%q) error = %v, wantErr %v", tt.ip, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrIPNotAllowed) {
				t.Errorf("expected ErrIPNotAllowed, got %v", err)
			}
		})
	}

	if err := mustValidator(t, SecurityConfig{}).checkIP("203.0.113.9"); err != nil {
		t.Errorf("empty allow list should pass, got %v", err)
	}
}

func TestNewValidator_InvalidAllowEntry(t *testing.T) {
	for _, entry := range []string{"10.0.0", "10.0.0.0/33", "example.com"} {
		if _, err := newValidator(SecurityConfig{AllowedIPs: []string{entry}}); !errors.Is(err, ErrInvalidAllow) {
			t.Errorf("entry %q: expected ErrInvalidAllow, got %v", entry, err)
		}
	}
}

func TestCheckRate(t *testing.T) {
	// 10/min gives a burst of one request per sender
	v := mustValidator(t, SecurityConfig{RateLimitPerMin: 10})

	if err := v.checkRate("+1555"); err != nil {
		t.Fatalf("first request should pass: %v", err)
	}
	if err := v.checkRate("+1555"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("second immediate request should be limited, got %v", err)
	}
	if err := v.checkRate("+1666"); err != nil {
		t.Errorf("other senders have their own bucket: %v", err)
	}

	unlimited := mustValidator(t, SecurityConfig{})
	for i := 0; i < 50; i++ {
		if err := unlimited.checkRate("x"); err != nil {
			t.Fatalf("limiting disabled, got %v", err)
		}
	}
}

func TestGuardMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g, err := NewGuard(SecurityConfig{Secret: "s3cret", RateLimitPerMin: 5}, &mockLogger{})
	if err != nil {
		t.Fatalf("NewGuard: %v", err)
	}

	r := gin.New()
	r.POST("/webhook/message", g.Middleware(), func(c *gin.Context) {
		c.String(http.StatusOK, c.PostForm("Body"))
	})

	send := func(secret, from string) *httptest.ResponseRecorder {
		form := url.Values{"Body": {"ran 2 miles"}, "From": {from}}
		req := httptest.NewRequest(http.MethodPost, "/webhook/message", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if secret != "" {
			req.Header.Set(SecretHeader, secret)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	if w := send("", "+1"); w.Code != http.StatusUnauthorized {
		t.Errorf("missing secret: expected 401, got %d", w.Code)
	}

	w := send("s3cret", "+1")
	if w.Code != http.StatusOK || w.Body.String() != "ran 2 miles" {
		t.Fatalf("expected pass-through with readable form, got %d %q", w.Code, w.Body.String())
	}
	if w := send("s3cret", "+1"); w.Code != http.StatusTooManyRequests {
		t.Errorf("expected 429 on second request, got %d", w.Code)
	}
	if w := send("s3cret", "+2"); w.Code != http.StatusOK {
		t.Errorf("different sender should pass, got %d", w.Code)
	}
}

func TestGuardMiddleware_AllowList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	g, err := NewGuard(SecurityConfig{AllowedIPs: []string{"192.168.1.0/24"}}, &mockLogger{})
	if err != nil {
		t.Fatalf("NewGuard: %v", err)
	}

	r := gin.New()
	r.POST("/webhook/message", g.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		remote string
		xff    string
		want   int
	}{
		{"Listed address", "192.168.1.20:5000", "", http.StatusNoContent},
		{"Forwarded header", "127.0.0.1:80", "192.168.1.5, 10.9.9.9", http.StatusNoContent},
		{"Unlisted address", "172.16.0.1:80", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/webhook/message", nil)
			req.RemoteAddr = tt.remote
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}
