package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/hearttrack/internal/common"
	"github.com/dmitrijs2005/hearttrack/internal/server/metrics"
	"github.com/dmitrijs2005/hearttrack/internal/server/models"
	"github.com/dmitrijs2005/hearttrack/internal/server/session"
	"github.com/juju/clock"
)

// RecordView is a stored record plus its alert level under the session's
// current thresholds. The level is recomputed on every read.
type RecordView struct {
	models.VitalsRecord
	Alert models.AlertLevel `json:"alert,omitempty"`
}

type LogInput struct {
	HeartRate     int
	BloodPressure string
	Notes         string
}

type LogResult struct {
	Record RecordView `json:"record"`
	// Advisory is set when a non-patient logs a reading. It is not an error.
	Advisory bool `json:"advisory"`
}

type PersonalDashboard struct {
	Identity   models.Identity   `json:"identity"`
	Thresholds models.Thresholds `json:"thresholds"`
	Records    []RecordView      `json:"records"`
	Stats      *PersonalStats    `json:"stats,omitempty"`
}

// AdminDashboard never contains passwords: users are exposed as UserView.
type AdminDashboard struct {
	Thresholds models.Thresholds  `json:"thresholds"`
	Users      []models.UserView  `json:"users"`
	Records    []RecordView       `json:"records"`
	Aggregates []models.Aggregate `json:"aggregates"`
	Alerts     []RecordView       `json:"alerts"`
}

// VitalsService logs readings and builds the dashboards and exports.
type VitalsService struct {
	clock   clock.Clock
	metrics *metrics.Metrics
}

func NewVitalsService(clk clock.Clock, m *metrics.Metrics) *VitalsService {
	if clk == nil {
		clk = clock.WallClock
	}
	return &VitalsService{clock: clk, metrics: m}
}

// Log stores a reading for the logged-in user, stamped with the current UTC
// time, and classifies it against the session thresholds.
func (s *VitalsService) Log(ctx context.Context, sess *session.Session, in LogInput) (*LogResult, error) {
	id := sess.Identity()
	if id == nil {
		return nil, common.ErrorUnauthorized
	}
	if in.HeartRate < common.MinHeartRate || in.HeartRate > common.MaxHeartRate {
		return nil, common.ErrorHeartRateRange
	}

	if _, err := sess.Repos.Users().GetUserByID(ctx, id.UserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	rec, err := sess.Repos.Vitals().Create(ctx, &models.VitalsRecord{
		UserID:        id.UserID,
		HeartRate:     in.HeartRate,
		BloodPressure: in.BloodPressure,
		Notes:         in.Notes,
		Timestamp:     s.clock.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("error storing vitals: %w", err)
	}

	level := sess.Thresholds.Classify(rec.HeartRate)
	s.metrics.Logged(string(level))

	return &LogResult{
		Record:   RecordView{VitalsRecord: *rec, Alert: level},
		Advisory: id.Role != models.RolePatient,
	}, nil
}

// PersonalDashboard returns the caller's records oldest first with stats.
// Stats is nil when there are no records.
func (s *VitalsService) PersonalDashboard(ctx context.Context, sess *session.Session) (*PersonalDashboard, error) {
	id := sess.Identity()
	if id == nil {
		return nil, common.ErrorUnauthorized
	}

	records, err := s.myRecords(ctx, sess, id.UserID)
	if err != nil {
		return nil, err
	}

	return &PersonalDashboard{
		Identity:   *id,
		Thresholds: sess.Thresholds,
		Records:    withAlerts(records, sess.Thresholds),
		Stats:      ComputePersonalStats(records),
	}, nil
}

// AdminDashboard is restricted to admins. Anonymous sessions get
// ErrorUnauthorized, everyone else ErrorForbidden.
func (s *VitalsService) AdminDashboard(ctx context.Context, sess *session.Session) (*AdminDashboard, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	users, err := sess.Repos.Users().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	views := make([]models.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, u.View())
	}

	records, err := s.allRecords(ctx, sess)
	if err != nil {
		return nil, err
	}

	return &AdminDashboard{
		Thresholds: sess.Thresholds,
		Users:      views,
		Records:    withAlerts(records, sess.Thresholds),
		Aggregates: ComputeAggregates(records),
		Alerts:     withAlerts(FilterAlerts(records, sess.Thresholds), sess.Thresholds),
	}, nil
}

// ExportMine writes the caller's records as CSV, oldest first.
func (s *VitalsService) ExportMine(ctx context.Context, sess *session.Session, w io.Writer) error {
	id := sess.Identity()
	if id == nil {
		return common.ErrorUnauthorized
	}
	records, err := s.myRecords(ctx, sess, id.UserID)
	if err != nil {
		return err
	}
	return WriteCSV(w, records)
}

// ExportAll writes every record as CSV, newest first. Admin only.
func (s *VitalsService) ExportAll(ctx context.Context, sess *session.Session, w io.Writer) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	records, err := s.allRecords(ctx, sess)
	if err != nil {
		return err
	}
	return WriteCSV(w, records)
}

// SetThresholds replaces the session's live limits. Out-of-range values are
// rejected and the previous limits stay in force.
func (s *VitalsService) SetThresholds(ctx context.Context, sess *session.Session, th models.Thresholds) error {
	if err := ValidateThresholds(th); err != nil {
		return err
	}
	sess.Thresholds = th
	return nil
}

// ValidateThresholds checks both limits against their allowed ranges.
func ValidateThresholds(th models.Thresholds) error {
	if th.High < common.MinHighThreshold || th.High > common.MaxHighThreshold ||
		th.Low < common.MinLowThreshold || th.Low > common.MaxLowThreshold {
		return common.ErrorThresholdRange
	}
	return nil
}

func (s *VitalsService) myRecords(ctx context.Context, sess *session.Session, userID int64) ([]models.VitalsRecord, error) {
	records, err := sess.Repos.Vitals().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing vitals: %w", err)
	}
	SortAscending(records)
	return records, nil
}

func (s *VitalsService) allRecords(ctx context.Context, sess *session.Session) ([]models.VitalsRecord, error) {
	records, err := sess.Repos.Vitals().ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing vitals: %w", err)
	}
	SortDescending(records)
	return records, nil
}

func requireAdmin(sess *session.Session) error {
	id := sess.Identity()
	if id == nil {
		return common.ErrorUnauthorized
	}
	if !id.IsAdmin() {
		return common.ErrorForbidden
	}
	return nil
}

func withAlerts(records []models.VitalsRecord, th models.Thresholds) []RecordView {
	out := make([]RecordView, 0, len(records))
	for _, r := range records {
		out = append(out, RecordView{VitalsRecord: r, Alert: th.Classify(r.HeartRate)})
	}
	return out
}
