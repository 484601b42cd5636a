package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hearttrack/internal/client/models"
)

func (a *App) Log(ctx context.Context) error {
	hr, err := getInt(a.reader, "Heart rate (BPM)", 72, a.out)
	if err != nil {
		return err
	}
	bp, err := getSimpleText(a.reader, "Blood pressure (e.g. 120/80)", a.out)
	if err != nil {
		return err
	}
	notes, err := getSimpleText(a.reader, "Notes (symptoms, meds, etc.)", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.LogVitals(ctx, models.VitalsInput{HeartRate: hr, BloodPressure: bp, Notes: notes})
	if err != nil {
		return a.checkSession(err)
	}

	if res.Advisory {
		fmt.Fprintln(a.out, "Note: only patients log vitals here. Admins can view all vitals with 'admin'.")
	}
	fmt.Fprintln(a.out, "Saved vitals.")
	switch res.Record.Alert {
	case "high":
		fmt.Fprintf(a.out, "High heart rate detected: %d bpm. Consider contacting a doctor.\n", res.Record.HeartRate)
	case "low":
		fmt.Fprintf(a.out, "Low heart rate detected: %d bpm. Consider contacting a doctor.\n", res.Record.HeartRate)
	}
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.api.Dashboard(ctx)
	if err != nil {
		return a.checkSession(err)
	}
	printPersonalDashboard(a.out, d)
	return nil
}

func (a *App) Admin(ctx context.Context) error {
	d, err := a.api.Admin(ctx)
	if err != nil {
		return a.checkSession(err)
	}
	printAdminDashboard(a.out, d)
	return nil
}

// Thresholds shows the session's alert limits and offers to change them.
// Pressing Enter keeps a value.
func (a *App) Thresholds(ctx context.Context) error {
	cur, err := a.api.Thresholds(ctx)
	if err != nil {
		return err
	}

	high, err := getInt(a.reader, "High BPM threshold (40-300)", cur.High, a.out)
	if err != nil {
		return err
	}
	low, err := getInt(a.reader, "Low BPM threshold (20-120)", cur.Low, a.out)
	if err != nil {
		return err
	}

	if high == cur.High && low == cur.Low {
		fmt.Fprintf(a.out, "Thresholds unchanged: high %d, low %d.\n", cur.High, cur.Low)
		return nil
	}

	th, err := a.api.SetThresholds(ctx, models.Thresholds{High: high, Low: low})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Thresholds updated: high %d, low %d.\n", th.High, th.Low)
	return nil
}
