package repository

import (
	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type InstrumenRepository interface {
	CreateIA01(o *domain.IA01Observasi) error
	ListIA01ByUnit(unitID uint) ([]domain.IA01Observasi, error)
	DeleteIA01(id uint) error

	CreateIA03(p *domain.IA03Pertanyaan) error
	ListIA03ByUnit(unitID uint) ([]domain.IA03Pertanyaan, error)
	DeleteIA03(id uint) error
}

type instrumenRepository struct {
	db *gorm.DB
}

func NewInstrumenRepository(db *gorm.DB) InstrumenRepository {
	return &instrumenRepository{db: db}
}

func (r *instrumenRepository) CreateIA01(o *domain.IA01Observasi) error {
	return r.db.Create(o).Error
}

func (r *instrumenRepository) ListIA01ByUnit(unitID uint) ([]domain.IA01Observasi, error) {
	var rows []domain.IA01Observasi
	if err := r.db.Where("id_unit = ?", unitID).Order("id_observasi ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *instrumenRepository) DeleteIA01(id uint) error {
	res := r.db.Delete(&domain.IA01Observasi{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *instrumenRepository) CreateIA03(p *domain.IA03Pertanyaan) error {
	return r.db.Create(p).Error
}

func (r *instrumenRepository) ListIA03ByUnit(unitID uint) ([]domain.IA03Pertanyaan, error) {
	var rows []domain.IA03Pertanyaan
	if err := r.db.Where("id_unit = ?", unitID).Order("id_ia03 ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *instrumenRepository) DeleteIA03(id uint) error {
	res := r.db.Delete(&domain.IA03Pertanyaan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
