package transport

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/goodnatureofminers/tracechain-gateway/internal/auth"
	"github.com/goodnatureofminers/tracechain-gateway/internal/model"
)

const (
	maxLoginLimiters = 10000
	limiterIdleAfter = 10 * time.Minute
)

// require admits requests carrying a session whose role is in roles. An empty
// roles list admits any valid session.
func (s *Server) require(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := s.gate.Authorize(r.Context(), auth.BearerToken(r), roles...)
			if err != nil {
				s.writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

type loginRequest struct {
	Role string `json:"role"`
	Name string `json:"name"`
}

type loginResponse struct {
	Token   string        `json:"token"`
	Session model.Session `json:"session"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	sess, err := s.gate.Login(r.Context(), req.Role, req.Name)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, loginResponse{Token: sess.Token, Session: sess})
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	sess, _ := auth.FromContext(r.Context())
	s.writeJSON(w, http.StatusOK, sess)
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.gate.Logout(r.Context(), auth.BearerToken(r)); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// throttleLogin limits login attempts per client address.
func (s *Server) throttleLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.allow(clientIP(r)) {
			s.metrics.ObserveLoginThrottled()
			w.Header().Set("Retry-After", "60")
			s.writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "too many login attempts"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// loginLimiter keeps one token bucket per client address.
type loginLimiter struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	now      func() time.Time
	limiters map[string]*limiterEntry
}

func newLoginLimiter(perMinute int) *loginLimiter {
	return &loginLimiter{
		limit:    rate.Limit(float64(perMinute) / 60),
		burst:    perMinute,
		now:      time.Now,
		limiters: make(map[string]*limiterEntry),
	}
}

func (l *loginLimiter) allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	entry, ok := l.limiters[ip]
	if !ok {
		if len(l.limiters) >= maxLoginLimiters {
			l.evict(now)
		}
		entry = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter.AllowN(now, 1)
}

// evict drops idle buckets, or the least recently seen one when none is idle.
func (l *loginLimiter) evict(now time.Time) {
	var oldestIP string
	var oldest time.Time
	for ip, entry := range l.limiters {
		if now.Sub(entry.lastSeen) > limiterIdleAfter {
			delete(l.limiters, ip)
			continue
		}
		if oldestIP == "" || entry.lastSeen.Before(oldest) {
			oldestIP, oldest = ip, entry.lastSeen
		}
	}
	if len(l.limiters) >= maxLoginLimiters && oldestIP != "" {
		delete(l.limiters, oldestIP)
	}
}
