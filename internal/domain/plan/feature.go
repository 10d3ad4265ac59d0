package plan

import (
	"fmt"
	"strings"
	"time"
)

// Feature is a catalog entry that plans can reference. Archived
// features stay attached to existing plans but cannot be added to new
// ones.
type Feature struct {
	id        uint
	name      string
	active    bool
	archived  bool
	createdAt time.Time
	updatedAt time.Time
}

func NewFeature(name string, active bool) (*Feature, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("feature name is required")
	}

	now := time.Now()

	return &Feature{
		name:      name,
		active:    active,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructFeature(featureID uint, name string, active, archived bool, createdAt, updatedAt time.Time) (*Feature, error) {
	if featureID == 0 {
		return nil, fmt.Errorf("feature ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("feature name is required")
	}

	return &Feature{
		id:        featureID,
		name:      name,
		active:    active,
		archived:  archived,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (f *Feature) ID() uint             { return f.id }
func (f *Feature) Name() string         { return f.name }
func (f *Feature) Active() bool         { return f.active }
func (f *Feature) Archived() bool       { return f.archived }
func (f *Feature) CreatedAt() time.Time { return f.createdAt }
func (f *Feature) UpdatedAt() time.Time { return f.updatedAt }

func (f *Feature) SetID(featureID uint) error {
	if f.id != 0 {
		return fmt.Errorf("feature ID is already set")
	}
	if featureID == 0 {
		return fmt.Errorf("feature ID cannot be zero")
	}
	f.id = featureID
	return nil
}

func (f *Feature) Archive() {
	f.archived = true
	f.active = false
	f.updatedAt = time.Now()
}
