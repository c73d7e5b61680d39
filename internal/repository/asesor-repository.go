package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"github.com/lspdigital/sertifikasi_service/internal/helper"
	"gorm.io/gorm"
)

type AsesorRepository interface {
	Create(a *domain.Asesor) error
	CreateBatch(rows []domain.Asesor) error
	FindByID(id uint) (*domain.Asesor, error)
	List(limit, offset int) ([]domain.Asesor, error)
	Save(a *domain.Asesor) error
	Delete(id uint) error
}

type asesorRepository struct {
	db *gorm.DB
}

func NewAsesorRepository(db *gorm.DB) AsesorRepository {
	return &asesorRepository{db: db}
}

func (r *asesorRepository) Create(a *domain.Asesor) error {
	if err := r.db.Create(a).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return domain.ErrDuplicateIdentity
		}
		return err
	}
	return nil
}

// CreateBatch inserts imported rows in one transaction so a bad row aborts
// the whole import.
func (r *asesorRepository) CreateBatch(rows []domain.Asesor) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&rows).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				return domain.ErrDuplicateIdentity
			}
			return err
		}
		return nil
	})
}

func (r *asesorRepository) FindByID(id uint) (*domain.Asesor, error) {
	var a domain.Asesor
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *asesorRepository) List(limit, offset int) ([]domain.Asesor, error) {
	var rows []domain.Asesor
	if err := r.db.Order("nama_lengkap ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *asesorRepository) Save(a *domain.Asesor) error {
	return r.db.Save(a).Error
}

func (r *asesorRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.Asesor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
