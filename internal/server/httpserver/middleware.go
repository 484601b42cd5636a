package httpserver

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/common"
	"github.com/dmitrijs2005/hearttrack/internal/server/auth"
	"github.com/dmitrijs2005/hearttrack/internal/server/session"
	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// sessionMiddleware resolves the session named by the cookie, creating a
// fresh one when the cookie is missing, invalid or points at an expired
// session. The cookie is re-issued on every request so it expires together
// with the idle session. The session stays locked until the handler
// returns.
func (s *HTTPServer) sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess *session.Session
		if raw, err := c.Cookie(common.SessionCookieName); err == nil {
			if id, err := auth.GetSessionIDFromToken(raw, s.jwtSecret); err == nil {
				sess, _ = s.sessions.Get(id)
			}
		}

		if sess == nil {
			var err error
			sess, err = s.sessions.Create(ctx)
			if err != nil {
				s.logger.Error(ctx, "session create failed", "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
				return
			}
			s.logger.Debug(ctx, "session started", "session", shortID(sess.ID))
		}

		ttl := s.sessions.TTL()
		token, err := auth.GenerateToken(sess.ID, s.jwtSecret, ttl)
		if err != nil {
			s.logger.Error(ctx, "session token failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(common.SessionCookieName, token, int(ttl.Seconds()), "/", "", false, true)

		sess.Lock()
		defer sess.Unlock()

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

func (s *HTTPServer) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		}
		if v, ok := c.Get(sessionKey); ok {
			args = append(args, "session", shortID(v.(*session.Session).ID))
		}
		s.logger.Info(c.Request.Context(), "request", args...)
	}
}

func (s *HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		s.logger.Error(c.Request.Context(), "panic recovered", "panic", rec, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
