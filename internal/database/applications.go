package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/pollmap/cbnugeumeundong/internal/model"
)

// InsertApplication persists one application row. GORM fills ID and
// CreatedAt; nothing else on the input is touched. There is no uniqueness
// check: a resubmission becomes a second, independent row.
func (d *Service) InsertApplication(ctx context.Context, app *model.Application) error {
	return d.WithContext(ctx).Create(app).Error
}

// LatestApplicationByIdentity returns the newest row matching the given
// name and phone digits, optionally narrowed by a full or trailing fragment
// of the student id. A missing row is (nil, nil), not an error.
func (d *Service) LatestApplicationByIdentity(ctx context.Context, name, studentID, phoneDigits string) (*model.Application, error) {
	q := d.WithContext(ctx).
		Where("name = ? AND phone = ?", strings.TrimSpace(name), phoneDigits)
	if sid := strings.TrimSpace(studentID); sid != "" {
		q = q.Where("student_id LIKE ?", "%"+sid)
	}

	var app model.Application
	err := q.Order("created_at DESC").First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}
