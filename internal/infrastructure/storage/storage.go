package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"

	"github.com/bikya/bikya-backend/internal/domain/contract"
)

const (
	uploadAttempts = 3
	uploadBackoff  = time.Second
)

// FileStorage uploads images to S3 when AWS credentials are configured and
// falls back to a local directory otherwise.
type FileStorage struct {
	useS3     bool
	bucket    string
	uploader  *s3manager.Uploader
	s3Client  *s3.S3
	uploadDir string
	baseURL   string
}

var _ contract.IFileStorage = (*FileStorage)(nil)

// NewFileStorage initializes either S3 or local storage from the environment.
func NewFileStorage() (*FileStorage, error) {
	region := os.Getenv("AWS_REGION")
	accessKey := os.Getenv("AWS_ACCESS_KEY_ID")
	secretKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	bucket := os.Getenv("AWS_S3_BUCKET")

	if region != "" && accessKey != "" && secretKey != "" && bucket != "" {
		sess, err := session.NewSession(&aws.Config{
			Region:      aws.String(region),
			Credentials: credentials.NewStaticCredentials(accessKey, secretKey, ""),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AWS session: %w", err)
		}
		return &FileStorage{
			useS3:    true,
			bucket:   bucket,
			uploader: s3manager.NewUploader(sess),
			s3Client: s3.New(sess),
		}, nil
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	baseURL := os.Getenv("APP_BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &FileStorage{
		useS3:     false,
		uploadDir: uploadDir,
		baseURL:   baseURL,
	}, nil
}

// UploadImage stores the file under folder/ and returns its public URL.
// Uploads are retried 3 times with a fixed 1s backoff.
func (fs *FileStorage) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	var url string
	var err error
	for attempt := 1; attempt <= uploadAttempts; attempt++ {
		if fs.useS3 {
			url, err = fs.uploadToS3(ctx, file, folder)
		} else {
			url, err = fs.uploadLocally(file, folder)
		}
		if err == nil {
			return url, nil
		}
		if attempt < uploadAttempts {
			select {
			case <-time.After(uploadBackoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}
	return "", fmt.Errorf("upload failed after %d attempts: %w", uploadAttempts, err)
}

func (fs *FileStorage) uploadToS3(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), filepath.Ext(file.Filename))
	out, err := fs.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(fs.bucket),
		Key:         aws.String(key),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return out.Location, nil
}

func (fs *FileStorage) uploadLocally(file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(fs.uploadDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return fmt.Sprintf("%s/uploads/%s/%s", fs.baseURL, folder, name), nil
}

// DeleteImage removes a previously uploaded image by its URL.
func (fs *FileStorage) DeleteImage(ctx context.Context, url string) error {
	if fs.useS3 {
		idx := strings.Index(url, ".amazonaws.com/")
		if idx < 0 {
			return fmt.Errorf("unrecognized S3 URL: %s", url)
		}
		key := url[idx+len(".amazonaws.com/"):]
		_, err := fs.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(fs.bucket),
			Key:    aws.String(key),
		})
		return err
	}

	idx := strings.Index(url, "/uploads/")
	if idx < 0 {
		return fmt.Errorf("unrecognized upload URL: %s", url)
	}
	return os.Remove(filepath.Join(fs.uploadDir, url[idx+len("/uploads/"):]))
}
