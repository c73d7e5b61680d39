package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type JadwalRepository interface {
	Create(j *domain.JadwalUji) error
	FindByID(id uint) (*domain.JadwalUji, error)
	List(limit, offset int) ([]domain.JadwalUji, error)
	ListAll() ([]domain.JadwalUji, error)
	Save(j *domain.JadwalUji) error
	Delete(id uint) error
}

type jadwalRepository struct {
	db *gorm.DB
}

func NewJadwalRepository(db *gorm.DB) JadwalRepository {
	return &jadwalRepository{db: db}
}

func (r *jadwalRepository) Create(j *domain.JadwalUji) error {
	return r.db.Create(j).Error
}

func (r *jadwalRepository) FindByID(id uint) (*domain.JadwalUji, error) {
	var j domain.JadwalUji
	err := r.db.
		Preload("Skema").
		Preload("TUK").
		Preload("Asesor").
		First(&j, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (r *jadwalRepository) List(limit, offset int) ([]domain.JadwalUji, error) {
	var rows []domain.JadwalUji
	err := r.db.
		Preload("Skema").
		Preload("TUK").
		Preload("Asesor").
		Order("tanggal_uji ASC").
		Limit(limit).Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *jadwalRepository) ListAll() ([]domain.JadwalUji, error) {
	var rows []domain.JadwalUji
	err := r.db.
		Preload("Skema").
		Preload("TUK").
		Preload("Asesor").
		Order("tanggal_uji ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *jadwalRepository) Save(j *domain.JadwalUji) error {
	return r.db.Save(j).Error
}

func (r *jadwalRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.JadwalUji{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
