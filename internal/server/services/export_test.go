package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type csvTuple struct {
	UserID        int64
	HeartRate     int
	BloodPressure string
	Notes         string
}

func TestCSV_RoundTrip(t *testing.T) {
	in := []models.VitalsRecord{
		{ID: 1, UserID: 2, HeartRate: 72, BloodPressure: "120/80", Notes: "morning", Timestamp: testStart.Add(123 * time.Nanosecond)},
		{ID: 2, UserID: 2, HeartRate: 150, BloodPressure: "", Notes: "ran, then \"sprinted\"\nfelt dizzy", Timestamp: testStart.Add(time.Hour)},
		{ID: 3, UserID: 5, HeartRate: 35, BloodPressure: "90/60", Notes: "", Timestamp: testStart.Add(2 * time.Hour)},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, in))

	out, err := readCSV(&buf)
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for i := range in {
		assert.Equal(t,
			csvTuple{in[i].UserID, in[i].HeartRate, in[i].BloodPressure, in[i].Notes},
			csvTuple{out[i].UserID, out[i].HeartRate, out[i].BloodPressure, out[i].Notes})
		assert.True(t, in[i].Timestamp.Equal(out[i].Timestamp))
		assert.Equal(t, in[i].ID, out[i].ID)
	}
}

func TestWriteCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "id,user_id,heart_rate,blood_pressure,notes,timestamp\n", buf.String())
}

func TestWriteCSV_TimestampFormat(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 600, time.FixedZone("X", 3600))
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, []models.VitalsRecord{{ID: 1, UserID: 1, HeartRate: 60, Timestamp: ts}}))
	assert.Contains(t, buf.String(), "2025-01-02T02:04:05.0000006Z")
}
