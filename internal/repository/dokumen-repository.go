package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type DokumenRepository interface {
	Create(d *domain.DokumenMutu) error
	FindByID(id uint) (*domain.DokumenMutu, error)
	List(limit, offset int) ([]domain.DokumenMutu, error)
	Delete(id uint) error
}

type dokumenRepository struct {
	db *gorm.DB
}

func NewDokumenRepository(db *gorm.DB) DokumenRepository {
	return &dokumenRepository{db: db}
}

func (r *dokumenRepository) Create(d *domain.DokumenMutu) error {
	return r.db.Create(d).Error
}

func (r *dokumenRepository) FindByID(id uint) (*domain.DokumenMutu, error) {
	var d domain.DokumenMutu
	if err := r.db.First(&d, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *dokumenRepository) List(limit, offset int) ([]domain.DokumenMutu, error) {
	var rows []domain.DokumenMutu
	if err := r.db.Order("nama_dokumen ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *dokumenRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.DokumenMutu{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
