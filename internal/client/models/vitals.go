// Package models holds the JSON shapes the CLI exchanges with the
// HeartTrack server.
package models

import "time"

type Identity struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (i Identity) IsAdmin() bool { return i.Role == "admin" }

type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type Thresholds struct {
	High int `json:"high"`
	Low  int `json:"low"`
}

type Record struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	HeartRate     int       `json:"heart_rate"`
	BloodPressure string    `json:"blood_pressure"`
	Notes         string    `json:"notes"`
	Timestamp     time.Time `json:"timestamp"`
	Alert         string    `json:"alert,omitempty"`
}

type VitalsInput struct {
	HeartRate     int    `json:"heart_rate"`
	BloodPressure string `json:"blood_pressure"`
	Notes         string `json:"notes"`
}

type LogResult struct {
	Record   Record `json:"record"`
	Advisory bool   `json:"advisory"`
}

type Stats struct {
	LatestBPM           int       `json:"latest_bpm"`
	LatestBloodPressure string    `json:"latest_blood_pressure"`
	LatestAt            time.Time `json:"latest_at"`
	AverageBPM          float64   `json:"average_bpm"`
	Count               int       `json:"count"`
}

type PersonalDashboard struct {
	Identity   Identity   `json:"identity"`
	Thresholds Thresholds `json:"thresholds"`
	Records    []Record   `json:"records"`
	Stats      *Stats     `json:"stats,omitempty"`
}

type Aggregate struct {
	UserID  int64   `json:"user_id"`
	Records int     `json:"records"`
	AvgBPM  float64 `json:"avg_bpm"`
	MinBPM  int     `json:"min_bpm"`
	MaxBPM  int     `json:"max_bpm"`
}

type AdminDashboard struct {
	Thresholds Thresholds  `json:"thresholds"`
	Users      []User      `json:"users"`
	Records    []Record    `json:"records"`
	Aggregates []Aggregate `json:"aggregates"`
	Alerts     []Record    `json:"alerts"`
}

type ArchiveResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}
