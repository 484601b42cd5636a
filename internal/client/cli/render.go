package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/hearttrack/internal/client/models"
	"github.com/dustin/go-humanize"
	"github.com/gosuri/uitable"
)

const timeLayout = "2006-01-02 15:04:05"

func newTable() *uitable.Table {
	t := uitable.New()
	t.MaxColWidth = 40
	t.Wrap = true
	return t
}

func recordsTable(records []models.Record, withUser bool) *uitable.Table {
	t := newTable()
	if withUser {
		t.AddRow("TIME", "WHEN", "USER", "BPM", "BP", "ALERT", "NOTES")
	} else {
		t.AddRow("TIME", "WHEN", "BPM", "BP", "ALERT", "NOTES")
	}

	for _, r := range records {
		ts := r.Timestamp.UTC().Format(timeLayout)
		when := humanize.Time(r.Timestamp)
		alert := strings.ToUpper(r.Alert)
		if withUser {
			t.AddRow(ts, when, r.UserID, r.HeartRate, r.BloodPressure, alert, r.Notes)
		} else {
			t.AddRow(ts, when, r.HeartRate, r.BloodPressure, alert, r.Notes)
		}
	}
	return t
}

func printPersonalDashboard(w io.Writer, d *models.PersonalDashboard) {
	fmt.Fprintf(w, "My Dashboard (%s)\n\n", d.Identity.Email)

	if d.Stats == nil || len(d.Records) == 0 {
		fmt.Fprintln(w, "No vitals yet. Use 'log' to add entries.")
		return
	}

	s := d.Stats
	bp := s.LatestBloodPressure
	if bp == "" {
		bp = "n/a"
	}
	fmt.Fprintf(w, "Latest reading: %d bpm, BP %s, %s\n\n", s.LatestBPM, bp, humanize.Time(s.LatestAt))

	stats := newTable()
	stats.AddRow("LATEST BPM", "AVERAGE BPM", "RECORDS")
	stats.AddRow(s.LatestBPM, fmt.Sprintf("%.1f", s.AverageBPM), s.Count)
	fmt.Fprintln(w, stats)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Recent records")
	fmt.Fprintln(w, recordsTable(d.Records, false))
}

func printAdminDashboard(w io.Writer, d *models.AdminDashboard) {
	fmt.Fprintln(w, "Admin Dashboard")
	fmt.Fprintln(w)

	users := newTable()
	users.AddRow("ID", "EMAIL", "ROLE")
	for _, u := range d.Users {
		users.AddRow(u.ID, u.Email, u.Role)
	}
	fmt.Fprintln(w, "Users")
	fmt.Fprintln(w, users)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "All Vitals")
	if len(d.Records) == 0 {
		fmt.Fprintln(w, "No vitals recorded yet.")
		return
	}
	fmt.Fprintln(w, recordsTable(d.Records, true))
	fmt.Fprintln(w)

	agg := newTable()
	agg.AddRow("USER_ID", "RECORDS", "AVG_BPM", "MIN_BPM", "MAX_BPM")
	for _, a := range d.Aggregates {
		agg.AddRow(a.UserID, a.Records, fmt.Sprintf("%.2f", a.AvgBPM), a.MinBPM, a.MaxBPM)
	}
	fmt.Fprintln(w, "Aggregates")
	fmt.Fprintln(w, agg)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Recent Alerts (high >= %d, low <= %d)\n", d.Thresholds.High, d.Thresholds.Low)
	if len(d.Alerts) == 0 {
		fmt.Fprintln(w, "No alerts.")
		return
	}
	fmt.Fprintln(w, recordsTable(d.Alerts, true))
}
