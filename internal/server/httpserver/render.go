package httpserver

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/common"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// page is the view model every HTML template receives. JSON clients get
// Data alone, or {"error": ...} when Error or Warning is set.
type page struct {
	Title      string
	Nav        string
	Identity   *models.Identity
	Thresholds models.Thresholds

	Error   string
	Warning string
	Info    string
	Success string

	Data any
}

func newPage(c *gin.Context, title, nav string) page {
	sess := currentSession(c)
	return page{
		Title:      title,
		Nav:        nav,
		Identity:   sess.Identity(),
		Thresholds: sess.Thresholds,
	}
}

func (s *HTTPServer) render(c *gin.Context, status int, tmpl string, p page) {
	var payload any = p.Data
	switch {
	case p.Error != "":
		payload = gin.H{"error": p.Error}
	case p.Warning != "" && status >= http.StatusBadRequest:
		payload = gin.H{"error": p.Warning}
	case payload == nil:
		payload = gin.H{}
	}

	c.Negotiate(status, gin.Negotiate{
		Offered:  []string{gin.MIMEHTML, gin.MIMEJSON},
		HTMLName: tmpl,
		HTMLData: p,
		JSONData: payload,
	})
}

// fail renders tmpl with the message for err. Unauthenticated access is a
// warning rather than an error, with wording specific to the page.
func (s *HTTPServer) fail(c *gin.Context, tmpl string, p page, err error, loginHint string) {
	status, msg := statusFor(err)

	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		p.Warning = loginHint
		if p.Warning == "" {
			p.Warning = msg
		}
	case status == http.StatusInternalServerError:
		s.logger.Error(c.Request.Context(), "request failed", "path", c.Request.URL.Path, "error", err)
		p.Error = msg
	default:
		p.Error = msg
	}

	s.render(c, status, tmpl, p)
}

func wantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON
}

var templateFuncs = template.FuncMap{
	"ago": func(t time.Time) string { return humanize.Time(t) },
	"stamp": func(t time.Time) string {
		return t.UTC().Format("2006-01-02 15:04:05")
	},
	"oneDecimal": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"active": func(current, name string) string {
		if current == name {
			return "active"
		}
		return ""
	},
}
