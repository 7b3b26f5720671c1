package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioDisk stores files in an object storage bucket instead of the local
// public directory. Selected with STORAGE_DRIVER=minio.
type MinioDisk struct {
	client  *minio.Client
	bucket  string
	baseURL string
	useSSL  bool
}

type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	BaseURL   string
}

func NewMinioDisk(opts MinioOptions) (*MinioDisk, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinioDisk{
		client:  client,
		bucket:  opts.Bucket,
		baseURL: opts.BaseURL,
		useSSL:  opts.UseSSL,
	}, nil
}

func (d *MinioDisk) ensureBucket(ctx context.Context) error {
	exists, err := d.client.BucketExists(ctx, d.bucket)
	if err != nil {
		return err
	}
	if !exists {
		return d.client.MakeBucket(ctx, d.bucket, minio.MakeBucketOptions{})
	}
	return nil
}

func (d *MinioDisk) Put(dir string, fh *multipart.FileHeader) (string, error) {
	ctx := context.Background()
	if err := d.ensureBucket(ctx); err != nil {
		return "", err
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))
	key := dir + "/" + name

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	_, err = d.client.PutObject(ctx, d.bucket, key, src, fh.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	return key, nil
}

func (d *MinioDisk) Delete(path string) error {
	return d.client.RemoveObject(context.Background(), d.bucket, path, minio.RemoveObjectOptions{})
}

func (d *MinioDisk) Exists(path string) bool {
	_, err := d.client.StatObject(context.Background(), d.bucket, path, minio.StatObjectOptions{})
	return err == nil
}

func (d *MinioDisk) URL(path string) string {
	if d.baseURL != "" {
		return strings.TrimRight(d.baseURL, "/") + "/" + path
	}
	scheme := "http://"
	if d.useSSL {
		scheme = "https://"
	}
	return scheme + d.client.EndpointURL().Host + "/" + d.bucket + "/" + path
}
