package media

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophmatch/internal/common"
	sc "github.com/dmitrijs2005/gophmatch/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *sc.Config {
	return &sc.Config{
		S3Region:                  "us-east-1",
		S3RootUser:                "minioadmin",
		S3RootPassword:            "minioadmin",
		S3BaseEndpoint:            "http://127.0.0.1:9000",
		S3Bucket:                  "avatars",
		AvatarURLValidityDuration: 5 * time.Minute,
	}
}

func restoreSeams(t *testing.T) {
	t.Helper()
	origLoad := loadDefaultAWSConfig
	origNewS3 := newS3ClientFromConfig
	origNewPre := newS3PresignClient
	origPut := presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})
}

func TestAvatarUploadURL_Success(t *testing.T) {
	restoreSeams(t)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&lo))
		}
		assert.Equal(t, "us-east-1", lo.Region)
		require.NotNil(t, lo.Credentials)
		return aws.Config{Region: lo.Region, Credentials: lo.Credentials}, nil
	}

	var gotOpts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&gotOpts)
		}
		return s3.NewFromConfig(cfg, optFns...)
	}

	var gotBucket, gotKey string
	var gotExpires time.Duration
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket, gotKey = *in.Bucket, *in.Key
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		gotExpires = po.Expires
		return &v4.PresignedHTTPRequest{URL: "http://127.0.0.1:9000/avatars/" + gotKey + "?sig", Method: "PUT"}, nil
	}

	p := NewPresigner(testConfig())
	fixed := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }

	u, err := p.AvatarUploadURL(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "avatars", gotBucket)
	assert.True(t, strings.HasPrefix(u.Key, "avatars/user-1/"), u.Key)
	assert.Equal(t, u.Key, gotKey)
	assert.Contains(t, u.URL, u.Key)
	assert.Equal(t, 5*time.Minute, gotExpires)
	assert.Equal(t, fixed.Add(5*time.Minute), u.ExpiresAt)
	require.NotNil(t, gotOpts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *gotOpts.BaseEndpoint)
	assert.True(t, gotOpts.UsePathStyle)
}

func TestAvatarUploadURL_Errors(t *testing.T) {
	restoreSeams(t)

	p := NewPresigner(testConfig())

	_, err := p.AvatarUploadURL(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrUnknownUser)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = p.AvatarUploadURL(context.Background(), "user-1")
	assert.EqualError(t, err, "load-fail")

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{Region: "us-east-1"}, nil
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errors.New("presign-fail")
	}
	_, err = p.AvatarUploadURL(context.Background(), "user-1")
	assert.EqualError(t, err, "presign-fail")
}

func TestNewPresigner_DefaultValidity(t *testing.T) {
	p := NewPresigner(&sc.Config{})
	assert.Equal(t, defaultURLValidity, p.validity)

	a, b := AvatarKey("u"), AvatarKey("u")
	assert.NotEqual(t, a, b)
}
