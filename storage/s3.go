package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"content-studio/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// NewS3Client creates the S3 client for the media bucket.
func NewS3Client(cfg *config.Config) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(
		func(service, region string, options ...interface{}) (aws.Endpoint, error) {
			return aws.Endpoint{
				URL:               cfg.MediaS3URL,
				SigningRegion:     cfg.MediaS3Region,
				HostnameImmutable: true,
			}, nil
		},
	)
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.MediaS3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.MediaS3Key, cfg.MediaS3Secret, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

// UploadMedia stores a media attachment under a fresh object key scoped to
// the content item and returns the public URL.
func UploadMedia(ctx context.Context, client *s3.Client, cfg *config.Config, contentID uint, filename string, data []byte) (string, error) {
	key := fmt.Sprintf("media/%d/%s%s", contentID, uuid.NewString(), path.Ext(filename))
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: &cfg.MediaS3Bucket,
		Key:    &key,
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", cfg.MediaS3URL, cfg.MediaS3Bucket, key), nil
}
