package models

import "time"

// VitalsRecord is one heart-rate / blood-pressure reading. Records are
// immutable once stored.
type VitalsRecord struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	HeartRate     int       `json:"heart_rate"`
	BloodPressure string    `json:"blood_pressure"`
	Notes         string    `json:"notes"`
	Timestamp     time.Time `json:"timestamp"`
}

type AlertLevel string

const (
	AlertNone AlertLevel = ""
	AlertHigh AlertLevel = "high"
	AlertLow  AlertLevel = "low"
)

// Thresholds are the live alert limits of a session.
type Thresholds struct {
	High int `json:"high"`
	Low  int `json:"low"`
}

// Classify compares a heart rate to the thresholds. High is checked first,
// so a reading satisfying both limits is reported as high.
func (t Thresholds) Classify(heartRate int) AlertLevel {
	switch {
	case heartRate >= t.High:
		return AlertHigh
	case heartRate <= t.Low:
		return AlertLow
	default:
		return AlertNone
	}
}

// Aggregate is the per-user summary shown on the admin dashboard.
type Aggregate struct {
	UserID  int64   `json:"user_id"`
	Records int     `json:"records"`
	AvgBPM  float64 `json:"avg_bpm"`
	MinBPM  int     `json:"min_bpm"`
	MaxBPM  int     `json:"max_bpm"`
}
