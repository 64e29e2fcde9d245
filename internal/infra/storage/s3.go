package storage

import (
	"context"
	"io"
	"time"

	"github.com/caderh/caderh-api/internal/infra/blob"
)

var (
	_ Storage   = (*S3)(nil)
	_ URLSigner = (*S3)(nil)
)

// S3 stores objects in a bucket under a key prefix.
type S3 struct {
	deps   *blob.S3Deps
	prefix string
}

func NewS3(deps *blob.S3Deps, prefix string) *S3 {
	return &S3{deps: deps, prefix: prefix}
}

func (s *S3) key(k string) (string, error) {
	clean, err := CleanKey(k)
	if err != nil {
		return "", err
	}
	if s.prefix == "" {
		return clean, nil
	}
	return s.prefix + "/" + clean, nil
}

func (s *S3) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}
	return s.deps.PutObject(ctx, k, r, size, contentType)
}

func (s *S3) Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error) {
	k, err := s.key(key)
	if err != nil {
		return nil, nil, err
	}
	body, meta, err := s.deps.GetObject(ctx, k)
	if err != nil {
		if blob.IsNotFound(err) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	return body, &ObjectInfo{Size: meta.SizeB, ContentType: meta.MIME, ModTime: meta.LastModified}, nil
}

func (s *S3) Delete(ctx context.Context, key string) error {
	k, err := s.key(key)
	if err != nil {
		return err
	}
	err = s.deps.DeleteObject(ctx, k)
	if err != nil && blob.IsNotFound(err) {
		return nil
	}
	return err
}

func (s *S3) Exists(ctx context.Context, key string) (bool, error) {
	k, err := s.key(key)
	if err != nil {
		return false, err
	}
	_, err = s.deps.HeadObject(ctx, k)
	if err != nil {
		if blob.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3) SignedURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	k, err := s.key(key)
	if err != nil {
		return "", err
	}
	return s.deps.PresignGet(ctx, k, expire)
}
