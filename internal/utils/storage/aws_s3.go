package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/doyoonear/motsulmoo/domain"
	"github.com/doyoonear/motsulmoo/internal/utils"
)

// AllowImage is the content-type allowlist for image uploads.
var AllowImage = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

type (
	AwsS3 interface {
		// UploadFile stores the file under a freshly generated object key in
		// dir and returns the key. Existing objects are never overwritten.
		UploadFile(data []byte, filename string, dir string, allowedTypes ...string) (string, error)
		// PresignURL derives a time-limited GET URL for a stored object.
		PresignURL(objectKey string, expiry time.Duration) (string, error)
		DeleteFile(objectKey string) error
	}

	awsS3 struct {
		client  *s3.Client
		presign *s3.PresignClient
		bucket  string
	}
)

func NewAwsS3() AwsS3 {
	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(utils.GetConfig("AWS_S3_REGION")),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS config: %v", err)
	}

	client := s3.NewFromConfig(cfg)
	return &awsS3{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  utils.GetConfig("AWS_S3_BUCKET"),
	}
}

// GenerateObjectKey builds a collision-resistant key preserving the original
// extension: <dir>/<unix millis>-<random suffix><ext>.
func GenerateObjectKey(dir, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("%s/%d-%s%s", dir, time.Now().UnixMilli(), suffix, ext)
}

func (s *awsS3) UploadFile(data []byte, filename string, dir string, allowedTypes ...string) (string, error) {
	contentType := http.DetectContentType(data)
	if len(allowedTypes) > 0 {
		allowed := false
		for _, t := range allowedTypes {
			if t == contentType {
				allowed = true
				break
			}
		}
		if !allowed {
			return "", domain.ErrInvalidImageFormat
		}
	}

	objectKey := GenerateObjectKey(dir, filename)
	_, err := s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		// no upsert
		IfNoneMatch: aws.String("*"),
	})
	if err != nil {
		return "", fmt.Errorf("파일 업로드 실패: %w", err)
	}

	return objectKey, nil
}

func (s *awsS3) PresignURL(objectKey string, expiry time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("Signed URL 생성 실패: %w", err)
	}
	return req.URL, nil
}

func (s *awsS3) DeleteFile(objectKey string) error {
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err
}
