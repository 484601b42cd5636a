package services

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
)

// CSVHeader is the exact column order of every vitals export.
var CSVHeader = []string{"id", "user_id", "heart_rate", "blood_pressure", "notes", "timestamp"}

// CSVTimeLayout is used for the timestamp column.
const CSVTimeLayout = time.RFC3339Nano

// WriteCSV writes the header and one row per record, in the given order.
func WriteCSV(w io.Writer, records []models.VitalsRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.UserID, 10),
			strconv.Itoa(r.HeartRate),
			r.BloodPressure,
			r.Notes,
			r.Timestamp.UTC().Format(CSVTimeLayout),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
