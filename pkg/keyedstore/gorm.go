package keyedstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// kvRecord is one persisted collection document.
type kvRecord struct {
	Key   string `gorm:"primaryKey;column:key;size:64"`
	Value []byte `gorm:"column:value"`
}

// TableName specifies the table name
func (kvRecord) TableName() string {
	return "kv_records"
}

// Gorm persists keys as rows of a single key/value table, letting the state
// ride in SQLite for desktop installs or Postgres when one is around.
type Gorm struct {
	db *gorm.DB
}

// NewGorm migrates the backing table and returns the store.
func NewGorm(db *gorm.DB) (*Gorm, error) {
	if err := db.AutoMigrate(&kvRecord{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Gorm{db: db}, nil
}

// Get implements Store
func (g *Gorm) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var rec kvRecord
	err := g.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return rec.Value, true, nil
}

// Set implements Store
func (g *Gorm) Set(ctx context.Context, key string, value []byte) error {
	rec := kvRecord{Key: key, Value: value}
	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}
