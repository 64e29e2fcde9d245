package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("storage: object not found")
	ErrInvalidPath = errors.New("storage: invalid path")
)

type ObjectInfo struct {
	Size        int64
	ContentType string
	ModTime     time.Time
}

// Storage keeps uploaded files addressed by slash separated relative keys,
// e.g. "projects/<id>/acta.pdf".
type Storage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Open(ctx context.Context, key string) (io.ReadCloser, *ObjectInfo, error)
	// Delete is a no-op when the object is already gone.
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// URLSigner is implemented by drivers that can hand out direct download links.
type URLSigner interface {
	SignedURL(ctx context.Context, key string, expire time.Duration) (string, error)
}

// CleanKey normalises a client supplied relative path and rejects anything
// that could escape the storage root.
func CleanKey(p string) (string, error) {
	p = strings.ReplaceAll(strings.TrimSpace(p), "\\", "/")
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, ":") {
		return "", ErrInvalidPath
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", ErrInvalidPath
		}
	}
	clean := path.Clean(p)
	if clean == "." || clean == "" {
		return "", ErrInvalidPath
	}
	return clean, nil
}
