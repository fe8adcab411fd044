package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/goal-tracker/backend/internal/domain/error"
	"github.com/goal-tracker/backend/internal/domain/valueobject"
	"github.com/goal-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// ipBudgetFactor lets several people behind one address log in within a
	// window before the address itself is throttled.
	ipBudgetFactor = 4

	// maxPeekedBody bounds how much of the request is decoded to find the login.
	maxPeekedBody = 16 << 10
)

// attemptWindow counts attempts in a fixed window.
type attemptWindow struct {
	attempts int
	resetAt  time.Time
}

func (w *attemptWindow) full(budget int, now time.Time) bool {
	return now.Before(w.resetAt) && w.attempts >= budget
}

// LoginLimiter throttles POST /auth/login on two budgets: failed attempts
// against one login, whatever address they come from, and all attempts from
// one client address. A successful login gives back its login's attempts.
type LoginLimiter struct {
	mu       sync.Mutex
	disabled bool
	windows  map[string]*attemptWindow
	perLogin int
	perIP    int
	window   time.Duration
	now      func() time.Time
}

// NewLoginLimiter allows maxAttempts failed attempts per login and window.
func NewLoginLimiter(maxAttempts int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		windows:  make(map[string]*attemptWindow),
		perLogin: maxAttempts,
		perIP:    maxAttempts * ipBudgetFactor,
		window:   window,
		now:      time.Now,
	}
}

// NewDisabledLoginLimiter returns a limiter that lets every request through.
func NewDisabledLoginLimiter() *LoginLimiter {
	return &LoginLimiter{
		disabled: true,
		windows:  make(map[string]*attemptWindow),
		now:      time.Now,
	}
}

// Middleware returns the gin handler enforcing both budgets.
func (l *LoginLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.disabled {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			ip = c.Request.RemoteAddr
		}
		login := attemptedLogin(c)

		if !l.admit(ip, login) {
			slog.Warn("Login rate limit exceeded", "client_ip", ip, "login", login)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many login attempts. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()

		if c.Writer.Status() == http.StatusOK && login != "" {
			l.forget(loginKey(login))
		}
	}
}

// attemptedLogin decodes the login from the request body and puts the body
// back for the handler.
func attemptedLogin(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}

	peeked, err := io.ReadAll(io.LimitReader(c.Request.Body, maxPeekedBody))
	c.Request.Body = io.NopCloser(io.MultiReader(bytes.NewReader(peeked), c.Request.Body))
	if err != nil {
		return ""
	}

	var req dto.LoginRequest
	if err := json.Unmarshal(peeked, &req); err != nil {
		return ""
	}
	return valueobject.NormalizeText(req.Login)
}

func ipKey(ip string) string       { return "ip:" + ip }
func loginKey(login string) string { return "login:" + login }

// admit counts the attempt against the address and, when known, the login.
// Nothing is counted when either budget is already spent.
func (l *LoginLimiter) admit(ip, login string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	keys := map[string]int{ipKey(ip): l.perIP}
	if login != "" {
		keys[loginKey(login)] = l.perLogin
	}

	for key, budget := range keys {
		if w, ok := l.windows[key]; ok && w.full(budget, now) {
			return false
		}
	}

	for key := range keys {
		w, ok := l.windows[key]
		if !ok || !now.Before(w.resetAt) {
			w = &attemptWindow{resetAt: now.Add(l.window)}
			l.windows[key] = w
		}
		w.attempts++
	}
	return true
}

func (l *LoginLimiter) forget(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.windows, key)
}

// Reset clears every window.
func (l *LoginLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.windows = make(map[string]*attemptWindow)
}

// Cleanup drops expired windows. The scheduler calls it periodically.
func (l *LoginLimiter) Cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
		}
	}
}
