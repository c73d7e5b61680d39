package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type PendaftaranRepository interface {
	Create(p *domain.Pendaftaran) error
	FindByID(id uint) (*domain.Pendaftaran, error)
	List(status domain.RegistrationStatus, limit, offset int) ([]domain.Pendaftaran, error)

	// ClaimTransition flips the record from `from` to `to` with a conditional
	// update and runs inTx inside the same transaction. If inTx fails the
	// status flip is rolled back too.
	ClaimTransition(id uint, from, to domain.RegistrationStatus, inTx func(tx *gorm.DB) error) error
}

type pendaftaranRepository struct {
	db *gorm.DB
}

func NewPendaftaranRepository(db *gorm.DB) PendaftaranRepository {
	return &pendaftaranRepository{db: db}
}

func (r *pendaftaranRepository) Create(p *domain.Pendaftaran) error {
	return r.db.Create(p).Error
}

func (r *pendaftaranRepository) FindByID(id uint) (*domain.Pendaftaran, error) {
	var p domain.Pendaftaran
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *pendaftaranRepository) List(status domain.RegistrationStatus, limit, offset int) ([]domain.Pendaftaran, error) {
	var rows []domain.Pendaftaran

	q := r.db.Order("tanggal_daftar DESC").Limit(limit).Offset(offset)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ClaimTransition is the only write path for registration status. The
// conditional UPDATE ... WHERE status=? plus the RowsAffected check is what
// makes two concurrent approves on the same record resolve to exactly one
// winner, even across server processes.
func (r *pendaftaranRepository) ClaimTransition(id uint, from, to domain.RegistrationStatus, inTx func(tx *gorm.DB) error) error {
	if !from.CanTransitionTo(to) {
		return domain.ErrInvalidStateTransition
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Pendaftaran{}).
			Where("id_pendaftaran = ? AND status = ?", id, from).
			Update("status", to)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var p domain.Pendaftaran
			if err := tx.First(&p, id).Error; errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return domain.ErrInvalidStateTransition
		}

		if inTx != nil {
			return inTx(tx)
		}
		return nil
	})
}
