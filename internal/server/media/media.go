// Package media hands out presigned S3 URLs so clients upload profile media
// straight to object storage. The upload itself never passes through the
// server.
package media

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophmatch/internal/common"
	sc "github.com/dmitrijs2005/gophmatch/internal/server/config"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

const defaultURLValidity = 15 * time.Minute

// UploadURL is a presigned PUT target.
type UploadURL struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

type Presigner struct {
	config   *sc.Config
	validity time.Duration
	now      func() time.Time
}

func NewPresigner(cfg *sc.Config) *Presigner {
	validity := cfg.AvatarURLValidityDuration
	if validity <= 0 {
		validity = defaultURLValidity
	}
	return &Presigner{config: cfg, validity: validity, now: time.Now}
}

// AvatarKey returns a fresh object key under the user's avatar prefix.
func AvatarKey(userID string) string {
	return fmt.Sprintf("avatars/%s/%s", userID, uuid.New())
}

func (p *Presigner) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(p.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			p.config.S3RootUser,
			p.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(p.config.S3BaseEndpoint)
		o.UsePathStyle = true
	})

	return newS3PresignClient(client), nil
}

// AvatarUploadURL presigns a PUT for a new avatar object of userID.
func (p *Presigner) AvatarUploadURL(ctx context.Context, userID string) (*UploadURL, error) {
	if userID == "" {
		return nil, common.ErrUnknownUser
	}

	presignClient, err := p.getPresignClient(ctx)
	if err != nil {
		return nil, err
	}

	bucket := p.config.S3Bucket
	key := AvatarKey(userID)
	issued := p.now()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(p.validity))
	if err != nil {
		return nil, err
	}

	return &UploadURL{Key: key, URL: req.URL, ExpiresAt: issued.Add(p.validity)}, nil
}
