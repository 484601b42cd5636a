package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/hearttrack/internal/common"
	"github.com/dmitrijs2005/hearttrack/internal/server/config"
	"github.com/dmitrijs2005/hearttrack/internal/server/session"
	"github.com/google/uuid"
	"github.com/juju/clock"
)

// S3 entry points, swapped out in tests.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ArchiveResult points at an uploaded all-vitals CSV.
type ArchiveResult struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ArchiveService uploads the admin CSV export to S3-compatible storage and
// hands back a presigned download link.
type ArchiveService struct {
	config *config.Config
	vitals *VitalsService
	clock  clock.Clock
}

func NewArchiveService(cfg *config.Config, vitals *VitalsService, clk clock.Clock) *ArchiveService {
	if clk == nil {
		clk = clock.WallClock
	}
	return &ArchiveService{config: cfg, vitals: vitals, clock: clk}
}

func (s *ArchiveService) Enabled() bool { return s.config.S3Enabled }

func (s *ArchiveService) storageKey() string {
	d := s.clock.Now().UTC()
	return fmt.Sprintf("exports/%d/%02d/%02d/%s.csv", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ArchiveService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Archive renders the all-vitals export for an admin session, uploads it
// and presigns a GET for it.
func (s *ArchiveService) Archive(ctx context.Context, sess *session.Session) (*ArchiveResult, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if !s.Enabled() {
		return nil, common.ErrorArchiveDisabled
	}

	var buf bytes.Buffer
	if err := s.vitals.ExportAll(ctx, sess, &buf); err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error configuring s3 client: %w", err)
	}

	bucket := s.config.S3Bucket
	key := s.storageKey()

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		return nil, fmt.Errorf("error uploading archive: %w", err)
	}

	validity := s.config.ArchiveURLValidity
	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket:                     &bucket,
		Key:                        &key,
		ResponseContentDisposition: aws.String(`attachment; filename="all_vitals.csv"`),
	}, s3.WithPresignExpires(validity))
	if err != nil {
		return nil, fmt.Errorf("error presigning archive: %w", err)
	}

	return &ArchiveResult{
		Key:       key,
		URL:       req.URL,
		ExpiresAt: s.clock.Now().UTC().Add(validity),
	}, nil
}
