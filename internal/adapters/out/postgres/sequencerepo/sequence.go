// Package sequencerepo implements the numbering authority on a counter
// table. Each prefix owns one row; the next value comes from an atomic
// upsert, never from scanning existing numbers for a maximum, so concurrent
// creators cannot mint duplicates.
package sequencerepo

import (
	"context"

	"wholesale/internal/pkg/errs"

	"gorm.io/gorm"
)

// SequenceDTO represents one per-prefix counter row.
type SequenceDTO struct {
	Prefix string `gorm:"primaryKey"`
	Value  int64
}

// TableName overrides GORM's default naming to use "number_sequences".
func (SequenceDTO) TableName() string {
	return "number_sequences"
}

// GormNumberSequence implements NumberSequence on the counter table.
type GormNumberSequence struct {
	db *gorm.DB
}

// NewGormNumberSequence creates a numbering authority bound to the given
// connection. Pass the transaction handle so an aborted operation does not
// consume a number visible to committed readers.
func NewGormNumberSequence(db *gorm.DB) *GormNumberSequence {
	return &GormNumberSequence{db: db}
}

// Next returns the next value for the prefix, starting at 1 for a prefix
// that has never been used. The upsert takes a row lock on the counter, so
// two transactions minting numbers under the same prefix serialize and each
// sees a distinct value.
func (s *GormNumberSequence) Next(ctx context.Context, prefix string) (int64, error) {
	if prefix == "" {
		return 0, errs.NewValueIsRequiredError("prefix")
	}

	var value int64
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO number_sequences (prefix, value)
		VALUES (?, 1)
		ON CONFLICT (prefix)
		DO UPDATE SET value = number_sequences.value + 1
		RETURNING value
	`, prefix).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
