package repository

import (
	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type NotifikasiRepository interface {
	Create(n *domain.Notifikasi) error
	List(limit, offset int) ([]domain.Notifikasi, error)
	MarkRead(id uint) error
	Delete(id uint) error
}

type notifikasiRepository struct {
	db *gorm.DB
}

func NewNotifikasiRepository(db *gorm.DB) NotifikasiRepository {
	return &notifikasiRepository{db: db}
}

func (r *notifikasiRepository) Create(n *domain.Notifikasi) error {
	return r.db.Create(n).Error
}

func (r *notifikasiRepository) List(limit, offset int) ([]domain.Notifikasi, error) {
	var rows []domain.Notifikasi
	if err := r.db.Order("tanggal DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *notifikasiRepository) MarkRead(id uint) error {
	res := r.db.Model(&domain.Notifikasi{}).Where("id_notifikasi = ?", id).Update("dibaca", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notifikasiRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.Notifikasi{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
