package module

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// gormStore keeps saved modules in a gorm-managed table. Paired with the
// in-memory SQLite DSN it is still process-lifetime only.
type gormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (Store, error) {
	if err := db.AutoMigrate(&Module{}); err != nil {
		return nil, fmt.Errorf("failed to migrate modules table: %w", err)
	}
	return &gormStore{db: db}, nil
}

func (s *gormStore) Append(ctx context.Context, m *Module) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *gormStore) ListAll(ctx context.Context) ([]*Module, error) {
	var modules []*Module
	if err := s.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}
