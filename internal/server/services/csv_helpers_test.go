package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dmitrijs2005/hearttrack/internal/server/models"
)

// readCSV parses an export produced by WriteCSV.
func readCSV(r io.Reader) ([]models.VitalsRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(CSVHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading csv header: %w", err)
	}
	for i, col := range CSVHeader {
		if header[i] != col {
			return nil, fmt.Errorf("unexpected csv column %d: %q", i, header[i])
		}
	}

	var out []models.VitalsRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error reading csv line %d: %w", line, err)
		}

		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		out = append(out, rec)
	}
}

func parseRow(row []string) (models.VitalsRecord, error) {
	var rec models.VitalsRecord
	var err error

	if rec.ID, err = strconv.ParseInt(row[0], 10, 64); err != nil {
		return rec, fmt.Errorf("bad id: %w", err)
	}
	if rec.UserID, err = strconv.ParseInt(row[1], 10, 64); err != nil {
		return rec, fmt.Errorf("bad user_id: %w", err)
	}
	if rec.HeartRate, err = strconv.Atoi(row[2]); err != nil {
		return rec, fmt.Errorf("bad heart_rate: %w", err)
	}
	rec.BloodPressure = row[3]
	rec.Notes = row[4]
	if rec.Timestamp, err = time.Parse(CSVTimeLayout, row[5]); err != nil {
		return rec, fmt.Errorf("bad timestamp: %w", err)
	}

	return rec, nil
}
