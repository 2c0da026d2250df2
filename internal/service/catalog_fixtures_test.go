package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/dataset"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/ports"
)

func newEmbeddedCatalog(t *testing.T) *CatalogService {
	t.Helper()
	svc, err := LoadCatalogService(context.Background(), dataset.Embedded{}, "embedded", CatalogServiceConfig{})
	if err != nil {
		t.Fatalf("load embedded catalog: %v", err)
	}
	return svc
}

type countingSource struct {
	ds    *domain.Dataset
	err   error
	loads int
}

func (s *countingSource) Load(ctx context.Context) (*domain.Dataset, error) {
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	return s.ds, nil
}

type memorySnapshotCache struct {
	mu     sync.Mutex
	items  map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
}

func newMemorySnapshotCache() *memorySnapshotCache {
	return &memorySnapshotCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memorySnapshotCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	data, ok := c.items[key]
	if !ok {
		return nil, ports.ErrSnapshotMiss
	}
	return data, nil
}

func (c *memorySnapshotCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.items[key] = value
	c.ttls[key] = ttl
	return nil
}

func (c *memorySnapshotCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

type uploadedObject struct {
	bucket      string
	name        string
	contentType string
	data        []byte
}

type memoryObjectStorage struct {
	uploads []uploadedObject
	err     error
}

func (s *memoryObjectStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	if int64(len(data)) != size {
		return "", fmt.Errorf("size mismatch: declared %d, read %d", size, len(data))
	}
	s.uploads = append(s.uploads, uploadedObject{bucket: bucket, name: objectName, contentType: contentType, data: data})
	return "https://files.example.ph/" + bucket + "/" + objectName, nil
}

func (s *memoryObjectStorage) Download(ctx context.Context, bucket, objectName string) ([]byte, error) {
	for _, obj := range s.uploads {
		if obj.bucket == bucket && obj.name == objectName {
			return obj.data, nil
		}
	}
	return nil, errors.New("no such key")
}
