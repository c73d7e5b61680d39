package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type SkemaRepository interface {
	Create(s *domain.Skema) error
	CreateBatch(rows []domain.Skema) error
	FindByID(id uint) (*domain.Skema, error)
	List(limit, offset int) ([]domain.Skema, error)
	ListAll() ([]domain.Skema, error)
	Save(s *domain.Skema) error
	Delete(id uint) error
}

type skemaRepository struct {
	db *gorm.DB
}

func NewSkemaRepository(db *gorm.DB) SkemaRepository {
	return &skemaRepository{db: db}
}

func (r *skemaRepository) Create(s *domain.Skema) error {
	return r.db.Create(s).Error
}

func (r *skemaRepository) CreateBatch(rows []domain.Skema) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

func (r *skemaRepository) FindByID(id uint) (*domain.Skema, error) {
	var s domain.Skema
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *skemaRepository) List(limit, offset int) ([]domain.Skema, error) {
	var rows []domain.Skema
	if err := r.db.Order("kode_skema ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListAll backs the CSV export.
func (r *skemaRepository) ListAll() ([]domain.Skema, error) {
	var rows []domain.Skema
	if err := r.db.Order("kode_skema ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skemaRepository) Save(s *domain.Skema) error {
	return r.db.Save(s).Error
}

func (r *skemaRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.Skema{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
