package dataset

import (
	"context"
	"fmt"

	"github.com/njprem/PH_TouristFinder_BackEnd/internal/domain"
	"github.com/njprem/PH_TouristFinder_BackEnd/internal/repository/ports"
)

// ObjectSource loads a dataset document (YAML or JSON) from object storage.
type ObjectSource struct {
	storage ports.ObjectStorage
	bucket  string
	object  string
}

func NewObjectSource(storage ports.ObjectStorage, bucket, object string) *ObjectSource {
	return &ObjectSource{storage: storage, bucket: bucket, object: object}
}

func (s *ObjectSource) Load(ctx context.Context) (*domain.Dataset, error) {
	data, err := s.storage.Download(ctx, s.bucket, s.object)
	if err != nil {
		return nil, err
	}
	ds, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", s.bucket, s.object, err)
	}
	return ds, nil
}
