package httpserver

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/hearttrack/internal/common"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/services"
	"github.com/gin-gonic/gin"
)

const (
	hintLog       = "You must be logged in to log vitals. Please login or register."
	hintDashboard = "Please login to view your dashboard."
	hintAdmin     = "Please login as admin to view admin dashboard."

	advisoryNotPatient = "Only patients log vitals here. Admins can view all vitals in Admin Dashboard."
)

type vitalsRequest struct {
	HeartRate     int    `form:"heart_rate" json:"heart_rate"`
	BloodPressure string `form:"blood_pressure" json:"blood_pressure"`
	Notes         string `form:"notes" json:"notes"`
}

type thresholdsRequest struct {
	High int `form:"high" json:"high"`
	Low  int `form:"low" json:"low"`
}

func (s *HTTPServer) logForm(c *gin.Context) {
	p := newPage(c, "Log Vitals", "log")
	if p.Identity == nil {
		s.fail(c, "log.html", p, common.ErrorUnauthorized, hintLog)
		return
	}
	if p.Identity.Role != models.RolePatient {
		p.Info = advisoryNotPatient
	}
	p.Data = gin.H{"thresholds": p.Thresholds}
	s.render(c, http.StatusOK, "log.html", p)
}

func (s *HTTPServer) logVitals(c *gin.Context) {
	p := newPage(c, "Log Vitals", "log")
	if p.Identity == nil {
		s.fail(c, "log.html", p, common.ErrorUnauthorized, hintLog)
		return
	}

	var req vitalsRequest
	if err := c.ShouldBind(&req); err != nil {
		p.Error = "heart rate must be a whole number"
		s.render(c, http.StatusBadRequest, "log.html", p)
		return
	}

	res, err := s.vitals.Log(c.Request.Context(), currentSession(c), services.LogInput{
		HeartRate:     req.HeartRate,
		BloodPressure: req.BloodPressure,
		Notes:         req.Notes,
	})
	if err != nil {
		s.fail(c, "log.html", p, err, hintLog)
		return
	}

	p.Success = "Saved vitals."
	if res.Advisory {
		p.Info = advisoryNotPatient
	}
	switch res.Record.Alert {
	case models.AlertHigh:
		p.Warning = fmt.Sprintf("High heart rate detected: %d bpm. Consider contacting a doctor.", res.Record.HeartRate)
	case models.AlertLow:
		p.Warning = fmt.Sprintf("Low heart rate detected: %d bpm. Consider contacting a doctor.", res.Record.HeartRate)
	}
	p.Data = res
	s.render(c, http.StatusCreated, "log.html", p)
}

func (s *HTTPServer) dashboard(c *gin.Context) {
	p := newPage(c, "My Dashboard", "dashboard")

	d, err := s.vitals.PersonalDashboard(c.Request.Context(), currentSession(c))
	if err != nil {
		s.fail(c, "dashboard.html", p, err, hintDashboard)
		return
	}

	if d.Stats == nil {
		p.Info = "No vitals yet. Use 'Log Data' to add entries."
	}
	p.Data = d
	s.render(c, http.StatusOK, "dashboard.html", p)
}

func (s *HTTPServer) dashboardChart(c *gin.Context) {
	d, err := s.vitals.PersonalDashboard(c.Request.Context(), currentSession(c))
	if err != nil {
		status, msg := statusFor(err)
		c.String(status, msg)
		return
	}
	if len(d.Records) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := heartRateChart(d.Records, d.Thresholds).Render(&buf); err != nil {
		s.logger.Error(c.Request.Context(), "chart render failed", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (s *HTTPServer) exportMine(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.vitals.ExportMine(c.Request.Context(), currentSession(c), &buf); err != nil {
		s.fail(c, "dashboard.html", newPage(c, "My Dashboard", "dashboard"), err, hintDashboard)
		return
	}
	sendCSV(c, "my_vitals.csv", buf.Bytes())
}

func (s *HTTPServer) admin(c *gin.Context) {
	p := newPage(c, "Admin Dashboard", "admin")

	d, err := s.vitals.AdminDashboard(c.Request.Context(), currentSession(c))
	if err != nil {
		s.fail(c, "admin.html", p, err, hintAdmin)
		return
	}

	if len(d.Records) == 0 {
		p.Info = "No vitals recorded yet."
	}
	p.Data = d
	s.render(c, http.StatusOK, "admin.html", p)
}

func (s *HTTPServer) exportAll(c *gin.Context) {
	var buf bytes.Buffer
	if err := s.vitals.ExportAll(c.Request.Context(), currentSession(c), &buf); err != nil {
		s.fail(c, "admin.html", newPage(c, "Admin Dashboard", "admin"), err, hintAdmin)
		return
	}
	sendCSV(c, "all_vitals.csv", buf.Bytes())
}

func (s *HTTPServer) archiveAll(c *gin.Context) {
	p := newPage(c, "Archive", "admin")

	res, err := s.archive.Archive(c.Request.Context(), currentSession(c))
	if err != nil {
		s.fail(c, "archive.html", p, err, hintAdmin)
		return
	}

	s.logger.Info(c.Request.Context(), "archive uploaded", "key", res.Key)

	p.Success = "Archive uploaded."
	p.Data = res
	s.render(c, http.StatusOK, "archive.html", p)
}

func (s *HTTPServer) thresholdsForm(c *gin.Context) {
	p := newPage(c, "Alert thresholds", "thresholds")
	p.Data = p.Thresholds
	s.render(c, http.StatusOK, "thresholds.html", p)
}

func (s *HTTPServer) setThresholds(c *gin.Context) {
	p := newPage(c, "Alert thresholds", "thresholds")
	sess := currentSession(c)

	var req thresholdsRequest
	if err := c.ShouldBind(&req); err != nil {
		s.fail(c, "thresholds.html", p, common.ErrorThresholdRange, "")
		return
	}

	err := s.vitals.SetThresholds(c.Request.Context(), sess, models.Thresholds{High: req.High, Low: req.Low})
	if err != nil {
		p.Data = p.Thresholds
		s.fail(c, "thresholds.html", p, err, "")
		return
	}

	p.Thresholds = sess.Thresholds
	p.Success = "Thresholds updated."
	p.Data = sess.Thresholds
	s.render(c, http.StatusOK, "thresholds.html", p)
}

func sendCSV(c *gin.Context, filename string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", body)
}
