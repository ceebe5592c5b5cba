package downloader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Object is a downloaded block file.
type Object struct {
	Body         []byte
	LastModified time.Time
}

// S3Config selects a bucket on S3 or an S3 compatible store.
type S3Config struct {
	Bucket         string
	Region         string
	Endpoint       string
	ForcePathStyle bool
	RequesterPays  bool
}

// S3Store reads block files from a bucket.
type S3Store struct {
	client        *s3.Client
	bucket        string
	requesterPays bool
	maxSize       int64
}

// NewS3Store creates an S3Store using the default AWS credential chain.
func NewS3Store(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required")
	}
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.ForcePathStyle
	})
	return &S3Store{
		client:        client,
		bucket:        cfg.Bucket,
		requesterPays: cfg.RequesterPays,
		maxSize:       defaultMaxBlockSize,
	}, nil
}

func (s *S3Store) GetObject(ctx context.Context, key string) (*Object, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	if s.requesterPays {
		input.RequestPayer = types.RequestPayerRequester
	}
	output, err := s.client.GetObject(ctx, input)
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%w: s3://%s/%s", ErrNotFound, s.bucket, key)
		}
		return nil, err
	}
	defer output.Body.Close()

	body, err := readAll(output.Body, s.maxSize)
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", s.bucket, key, err)
	}
	return &Object{Body: body, LastModified: aws.ToTime(output.LastModified)}, nil
}

// FSStore reads block files laid out under a local directory with the same keys
// as the bucket.
type FSStore struct {
	root    string
	maxSize int64
}

func NewFSStore(root string) (*FSStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}
	return &FSStore{root: root, maxSize: defaultMaxBlockSize}, nil
}

func (s *FSStore) GetObject(_ context.Context, key string) (*Object, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	body, err := readAll(f, s.maxSize)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return &Object{Body: body, LastModified: info.ModTime()}, nil
}

// NoStore is the ObjectStore of a deployment that only streams from block
// nodes. Every key is missing.
type NoStore struct{}

func (NoStore) GetObject(_ context.Context, key string) (*Object, error) {
	return nil, fmt.Errorf("%w: no object store configured for %s", ErrNotFound, key)
}

func readAll(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("object larger than %d bytes", limit)
	}
	return body, nil
}
