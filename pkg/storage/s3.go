package storage

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"grace-media/pkg/config"
	"grace-media/pkg/logger"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
)

// Buckets used by the content service. One bucket per content family,
// mirroring the folder layout the dashboard expects.
const (
	BucketSermons       = "sermons"
	BucketDocumentaries = "documentaries"
	BucketPresentations = "presentations"
	BucketMaterials     = "materials"
	BucketCommunity     = "community"
	BucketAvatars       = "avatars"
)

var allBuckets = []string{
	BucketSermons,
	BucketDocumentaries,
	BucketPresentations,
	BucketMaterials,
	BucketCommunity,
	BucketAvatars,
}

type Client struct {
	s3Client *s3.S3
	logger   *logger.Logger
}

func NewClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	client := &Client{
		s3Client: s3.New(sess),
		logger:   log,
	}

	// Ensure buckets exist (for MinIO)
	for _, bucket := range allBuckets {
		_, err = client.s3Client.HeadBucket(&s3.HeadBucketInput{
			Bucket: aws.String(bucket),
		})
		if err != nil {
			_, err = client.s3Client.CreateBucket(&s3.CreateBucketInput{
				Bucket: aws.String(bucket),
			})
			if err != nil {
				// Ignore error if bucket already exists
			}
		}
	}

	return client, nil
}

// makeObjectKey builds a collision-resistant object key from the original
// filename: {folder}/{unix-ms}-{random}{ext}.
func makeObjectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)
	if folder == "" {
		return name
	}
	return fmt.Sprintf("%s/%s", folder, name)
}

// Upload stores a multipart file in the given bucket/folder and returns its
// public URL. Progress is reported as the file is read, capped at 90 until
// the remote call completes, then forced to 100.
func (c *Client) Upload(fh *multipart.FileHeader, bucket, folder string, onProgress func(int)) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	if onProgress != nil {
		onProgress(0)
	}

	var reader io.Reader = src
	if onProgress != nil && fh.Size > 0 {
		reader = &progressReader{
			reader: src,
			total:  fh.Size,
			report: onProgress,
		}
	}

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := makeObjectKey(folder, fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = c.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	if onProgress != nil {
		onProgress(100)
	}

	return c.publicURL(bucket, key), nil
}

// publicURL resolves the publicly addressable URL for an object.
func (c *Client) publicURL(bucket, key string) string {
	endpoint := aws.StringValue(c.s3Client.Config.Endpoint)
	if endpoint != "" && !strings.Contains(endpoint, "amazonaws.com") {
		// MinIO URL format
		protocol := "http"
		if c.s3Client.Config.DisableSSL != nil && !*c.s3Client.Config.DisableSSL {
			protocol = "https"
		}
		endpoint = strings.TrimPrefix(endpoint, "http://")
		endpoint = strings.TrimPrefix(endpoint, "https://")
		return fmt.Sprintf("%s://%s/%s/%s", protocol, endpoint, bucket, key)
	}

	// AWS S3 URL format
	region := aws.StringValue(c.s3Client.Config.Region)
	if region == "" {
		region = "us-east-1"
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}

// DeleteByURL removes the object a public URL points to. URLs that don't
// match the expected layout for the bucket are logged and skipped - the
// object is treated as already absent. Callers must treat any returned
// error as a cleanup warning, never as a failure of their own operation.
func (c *Client) DeleteByURL(url, bucket string) error {
	key, ok := ObjectKeyFromURL(url, bucket)
	if !ok {
		c.logger.Warn("could not extract object key from URL %q (bucket %s), skipping delete", url, bucket)
		return nil
	}

	_, err := c.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", bucket, key, err)
	}
	return nil
}

// ObjectKeyFromURL extracts the object key from a public URL. It handles
// both path-style URLs ({endpoint}/{bucket}/{key}) and virtual-hosted
// URLs ({bucket}.s3.{region}.amazonaws.com/{key}).
func ObjectKeyFromURL(url, bucket string) (string, bool) {
	// Path-style: anything after "/{bucket}/"
	marker := "/" + bucket + "/"
	if idx := strings.Index(url, marker); idx >= 0 {
		key := url[idx+len(marker):]
		if key != "" {
			return key, true
		}
		return "", false
	}

	// Virtual-hosted style
	hostMarker := "://" + bucket + ".s3"
	if idx := strings.Index(url, hostMarker); idx >= 0 {
		rest := url[idx+len(hostMarker):]
		if slash := strings.Index(rest, "/"); slash >= 0 && slash < len(rest)-1 {
			return rest[slash+1:], true
		}
	}

	return "", false
}

// Object describes a stored file for the media library listing.
type Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	SizeDisplay  string    `json:"size_display"`
	LastModified time.Time `json:"last_modified"`
	URL          string    `json:"url"`
}

// ListObjects returns the objects in a bucket under an optional prefix.
func (c *Client) ListObjects(bucket, prefix string) ([]Object, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var objects []Object
	err := c.s3Client.ListObjectsV2Pages(input, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, item := range page.Contents {
			key := aws.StringValue(item.Key)
			size := aws.Int64Value(item.Size)
			objects = append(objects, Object{
				Key:          key,
				Size:         size,
				SizeDisplay:  FormatFileSize(size),
				LastModified: aws.TimeValue(item.LastModified),
				URL:          c.publicURL(bucket, key),
			})
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list objects in %s: %w", bucket, err)
	}
	return objects, nil
}
