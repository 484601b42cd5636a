package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/hearttrack/internal/client/models"
)

type Client interface {
	Ping(ctx context.Context) error
	Register(ctx context.Context, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Logout(ctx context.Context) error
	LogVitals(ctx context.Context, in models.VitalsInput) (*models.LogResult, error)
	Dashboard(ctx context.Context) (*models.PersonalDashboard, error)
	Admin(ctx context.Context) (*models.AdminDashboard, error)
	Thresholds(ctx context.Context) (*models.Thresholds, error)
	SetThresholds(ctx context.Context, th models.Thresholds) (*models.Thresholds, error)
	ExportMine(ctx context.Context, w io.Writer) error
	ExportAll(ctx context.Context, w io.Writer) error
	Archive(ctx context.Context) (*models.ArchiveResult, error)
}
