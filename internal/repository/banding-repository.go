package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type BandingRepository interface {
	Create(b *domain.Banding) error
	FindByID(id uint) (*domain.Banding, error)
	List(limit, offset int) ([]domain.Banding, error)

	// UpdateStatus flips status with the same conditional-update guard as
	// registrations: the WHERE clause carries the expected current status.
	UpdateStatus(id uint, from, to domain.BandingStatus, tanggapan string) error
}

type bandingRepository struct {
	db *gorm.DB
}

func NewBandingRepository(db *gorm.DB) BandingRepository {
	return &bandingRepository{db: db}
}

func (r *bandingRepository) Create(b *domain.Banding) error {
	return r.db.Create(b).Error
}

func (r *bandingRepository) FindByID(id uint) (*domain.Banding, error) {
	var b domain.Banding
	if err := r.db.First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *bandingRepository) List(limit, offset int) ([]domain.Banding, error) {
	var rows []domain.Banding
	if err := r.db.Order("tanggal_pengajuan DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bandingRepository) UpdateStatus(id uint, from, to domain.BandingStatus, tanggapan string) error {
	res := r.db.Model(&domain.Banding{}).
		Where("id_banding = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":    to,
			"tanggapan": tanggapan,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var b domain.Banding
		if err := r.db.First(&b, id).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidStateTransition
	}
	return nil
}

type PengaduanRepository interface {
	Create(p *domain.Pengaduan) error
	FindByID(id uint) (*domain.Pengaduan, error)
	List(limit, offset int) ([]domain.Pengaduan, error)
	UpdateStatus(id uint, from, to domain.PengaduanStatus, tanggapan string) error
}

type pengaduanRepository struct {
	db *gorm.DB
}

func NewPengaduanRepository(db *gorm.DB) PengaduanRepository {
	return &pengaduanRepository{db: db}
}

func (r *pengaduanRepository) Create(p *domain.Pengaduan) error {
	return r.db.Create(p).Error
}

func (r *pengaduanRepository) FindByID(id uint) (*domain.Pengaduan, error) {
	var p domain.Pengaduan
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *pengaduanRepository) List(limit, offset int) ([]domain.Pengaduan, error) {
	var rows []domain.Pengaduan
	if err := r.db.Order("tanggal_lapor DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *pengaduanRepository) UpdateStatus(id uint, from, to domain.PengaduanStatus, tanggapan string) error {
	res := r.db.Model(&domain.Pengaduan{}).
		Where("id_pengaduan = ? AND status = ?", id, from).
		Updates(map[string]any{
			"status":    to,
			"tanggapan": tanggapan,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var p domain.Pengaduan
		if err := r.db.First(&p, id).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return domain.ErrInvalidStateTransition
	}
	return nil
}
