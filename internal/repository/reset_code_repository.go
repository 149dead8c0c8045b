package repository

import (
	"errors"
	"time"

	"github.com/myseringan/texnokross-bolt-sub000/internal/models"

	"gorm.io/gorm"
)

// ResetCodeRepository is the password_reset_codes table access interface.
type ResetCodeRepository interface {
	Create(code *models.PasswordResetCode) error
	GetActive(phone, code string, now time.Time) (*models.PasswordResetCode, error)
	MarkUsed(id uint) error
	InvalidateByPhone(phone string) error
}

// GormResetCodeRepository is the GORM implementation.
type GormResetCodeRepository struct {
	db *gorm.DB
}

// NewResetCodeRepository creates a reset code repository.
func NewResetCodeRepository(db *gorm.DB) *GormResetCodeRepository {
	return &GormResetCodeRepository{db: db}
}

// Create inserts a reset code.
func (r *GormResetCodeRepository) Create(code *models.PasswordResetCode) error {
	return r.db.Create(code).Error
}

// GetActive returns the newest unused, unexpired code matching phone and
// code, or nil.
func (r *GormResetCodeRepository) GetActive(phone, code string, now time.Time) (*models.PasswordResetCode, error) {
	var record models.PasswordResetCode
	err := r.db.
		Where("phone = ? AND code = ? AND used = ? AND expires_at > ?", phone, code, false, now).
		Order("id DESC").
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// MarkUsed consumes a code.
func (r *GormResetCodeRepository) MarkUsed(id uint) error {
	return r.db.Model(&models.PasswordResetCode{}).Where("id = ?", id).Update("used", true).Error
}

// InvalidateByPhone consumes all outstanding codes for a phone.
func (r *GormResetCodeRepository) InvalidateByPhone(phone string) error {
	return r.db.Model(&models.PasswordResetCode{}).Where("phone = ? AND used = ?", phone, false).Update("used", true).Error
}
