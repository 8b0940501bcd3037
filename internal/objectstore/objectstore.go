// Package objectstore uploads profile images and logos and returns references to them.
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"cloud.google.com/go/storage"

	"github.com/go-petr/pet-budget/internal/domain"
)

// ErrInvalidRef is returned for references not produced by the store.
var ErrInvalidRef = errors.New("invalid object reference")

// splitRef splits "<scheme>://bucket/object" into bucket and object.
func splitRef(scheme, ref string) (string, string, error) {
	prefix := scheme + "://"
	if !strings.HasPrefix(ref, prefix) {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRef, ref)
	}

	parts := strings.SplitN(strings.TrimPrefix(ref, prefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidRef, ref)
	}

	return parts[0], parts[1], nil
}

// GCS keeps objects in a Google Cloud Storage bucket.
type GCS struct {
	client *storage.Client
	bucket string
}

// NewGCS returns GCS using Application Default Credentials.
func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCS{
		client: client,
		bucket: bucket,
	}, nil
}

// Put uploads u under name and returns its gs:// URI.
func (g *GCS) Put(ctx context.Context, name string, u domain.Upload) (string, error) {
	w := g.client.Bucket(g.bucket).Object(name).NewWriter(ctx)
	w.ContentType = u.ContentType

	if _, err := w.Write(u.Data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("write object %s: %w", name, err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", g.bucket, name), nil
}

// Get downloads the object behind a gs:// URI.
func (g *GCS) Get(ctx context.Context, ref string) ([]byte, error) {
	bucket, name, err := splitRef("gs", ref)
	if err != nil {
		return nil, err
	}

	rc, err := g.client.Bucket(bucket).Object(name).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, domain.ErrNotFound
		}

		return nil, fmt.Errorf("read object %s/%s: %w", bucket, name, err)
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

// Delete removes the object behind a gs:// URI. Missing objects are ignored.
func (g *GCS) Delete(ctx context.Context, ref string) error {
	bucket, name, err := splitRef("gs", ref)
	if err != nil {
		return err
	}

	err = g.client.Bucket(bucket).Object(name).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return fmt.Errorf("delete object %s/%s: %w", bucket, name, err)
	}

	return nil
}

// Close releases the storage client.
func (g *GCS) Close() error {
	return g.client.Close()
}

// Memory keeps objects in process memory.
type Memory struct {
	bucket string

	mu      sync.RWMutex
	objects map[string]domain.Upload
}

// NewMemory returns an empty Memory store.
func NewMemory(bucket string) *Memory {
	return &Memory{
		bucket:  bucket,
		objects: make(map[string]domain.Upload),
	}
}

// Put stores u under name and returns its mem:// reference.
func (m *Memory) Put(_ context.Context, name string, u domain.Upload) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data := make([]byte, len(u.Data))
	copy(data, u.Data)
	u.Data = data

	m.objects[name] = u

	return fmt.Sprintf("mem://%s/%s", m.bucket, name), nil
}

// Get returns the object behind ref.
func (m *Memory) Get(_ context.Context, ref string) ([]byte, error) {
	_, name, err := splitRef("mem", ref)
	if err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.objects[name]
	if !ok {
		return nil, domain.ErrNotFound
	}

	return u.Data, nil
}

// Delete removes the object behind ref. Missing objects are ignored.
func (m *Memory) Delete(_ context.Context, ref string) error {
	_, name, err := splitRef("mem", ref)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.objects, name)

	return nil
}

// Len returns the number of stored objects.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.objects)
}
