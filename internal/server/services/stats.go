package services

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
)

// PersonalStats summarises one user's readings.
type PersonalStats struct {
	LatestBPM           int       `json:"latest_bpm"`
	LatestBloodPressure string    `json:"latest_blood_pressure"`
	LatestAt            time.Time `json:"latest_at"`
	AverageBPM          float64   `json:"average_bpm"`
	Count               int       `json:"count"`
}

func compareByTime(a, b models.VitalsRecord) int {
	if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortAscending orders records oldest first; equal timestamps fall back to id.
func SortAscending(records []models.VitalsRecord) {
	slices.SortStableFunc(records, compareByTime)
}

// SortDescending orders records newest first.
func SortDescending(records []models.VitalsRecord) {
	slices.SortStableFunc(records, func(a, b models.VitalsRecord) int {
		return compareByTime(b, a)
	})
}

// ComputePersonalStats returns nil for an empty slice. Latest is the record
// with the greatest timestamp regardless of slice order; the average is
// rounded to one decimal.
func ComputePersonalStats(records []models.VitalsRecord) *PersonalStats {
	if len(records) == 0 {
		return nil
	}

	latest := slices.MaxFunc(records, compareByTime)

	sum := 0
	for _, r := range records {
		sum += r.HeartRate
	}

	return &PersonalStats{
		LatestBPM:           latest.HeartRate,
		LatestBloodPressure: latest.BloodPressure,
		LatestAt:            latest.Timestamp,
		AverageBPM:          roundTo(float64(sum)/float64(len(records)), 1),
		Count:               len(records),
	}
}

// ComputeAggregates groups heart rates by user id, ordered by user id.
func ComputeAggregates(records []models.VitalsRecord) []models.Aggregate {
	byUser := make(map[int64]*models.Aggregate)
	sums := make(map[int64]int)

	for _, r := range records {
		agg, ok := byUser[r.UserID]
		if !ok {
			agg = &models.Aggregate{UserID: r.UserID, MinBPM: r.HeartRate, MaxBPM: r.HeartRate}
			byUser[r.UserID] = agg
		}
		agg.Records++
		agg.MinBPM = min(agg.MinBPM, r.HeartRate)
		agg.MaxBPM = max(agg.MaxBPM, r.HeartRate)
		sums[r.UserID] += r.HeartRate
	}

	out := make([]models.Aggregate, 0, len(byUser))
	for id, agg := range byUser {
		agg.AvgBPM = float64(sums[id]) / float64(agg.Records)
		out = append(out, *agg)
	}
	slices.SortFunc(out, func(a, b models.Aggregate) int { return cmp.Compare(a.UserID, b.UserID) })

	return out
}

// FilterAlerts keeps records whose heart rate reaches either threshold,
// preserving input order.
func FilterAlerts(records []models.VitalsRecord, th models.Thresholds) []models.VitalsRecord {
	var out []models.VitalsRecord
	for _, r := range records {
		if r.HeartRate >= th.High || r.HeartRate <= th.Low {
			out = append(out, r)
		}
	}
	return out
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
