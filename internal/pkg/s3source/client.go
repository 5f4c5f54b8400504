package s3source

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"

	"github.com/FelixBrandt/Foliogram/internal/pkg/gallery"
)

// imageExtensions mirrors the content types the Drive query filters on.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
}

// Client lists gallery photos from an S3-compatible bucket. A "folder" is a
// key prefix; image bytes are served through the local image proxy, so the
// listing only needs object metadata.
type Client struct {
	s3Client *s3.Client
	cfg      *Config
}

// NewClient creates a new S3 gallery source client.
func NewClient(cfg *Config) (*Client, error) {
	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			o.UsePathStyle = true // S3-compatible services want path-style URLs
			o.UseAccelerate = false
		}
	})

	log.Infof("initialized s3 gallery source for bucket %s", cfg.BucketName)
	return &Client{s3Client: s3Client, cfg: cfg}, nil
}

// ListImages lists the image objects under the given key prefix, newest
// first, matching the ordering the Drive source requests.
func (c *Client) ListImages(ctx context.Context, folderID string) ([]gallery.File, error) {
	prefix := strings.TrimSuffix(folderID, "/") + "/"

	var files []gallery.File
	paginator := s3.NewListObjectsV2Paginator(c.s3Client, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.cfg.BucketName),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects under %s: %w", prefix, err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if !imageExtensions[strings.ToLower(path.Ext(key))] {
				continue
			}

			var created string
			if obj.LastModified != nil {
				created = obj.LastModified.UTC().Format(time.RFC3339)
			}
			files = append(files, gallery.File{
				ID:           key,
				Name:         path.Base(key),
				MimeType:     mimeTypeForExt(path.Ext(key)),
				CreatedTime:  created,
				ModifiedTime: created,
				Size:         strconv.FormatInt(aws.ToInt64(obj.Size), 10),
				BaseURL:      "/gallery/s3/" + url.PathEscape(key),
			})
		}
	}

	sort.SliceStable(files, func(i, j int) bool {
		return files[i].CreatedTime > files[j].CreatedTime
	})

	return files, nil
}

// GetObject streams one object's bytes for the image proxy.
func (c *Client) GetObject(ctx context.Context, key string) (io.ReadCloser, error) {
	out, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.cfg.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", key, err)
	}
	return out.Body, nil
}

func mimeTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".bmp":
		return "image/bmp"
	default:
		return "image/jpeg"
	}
}
