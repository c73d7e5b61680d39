package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type SKKNIRepository interface {
	Create(s *domain.SKKNI) error
	FindByID(id uint) (*domain.SKKNI, error)
	List(limit, offset int) ([]domain.SKKNI, error)
	Save(s *domain.SKKNI) error
	Delete(id uint) error

	CreateUnit(u *domain.UnitKompetensi) error
	FindUnitByID(id uint) (*domain.UnitKompetensi, error)
	ListUnits(limit, offset int) ([]domain.UnitKompetensi, error)
	ListUnitsBySKKNI(skkniID uint) ([]domain.UnitKompetensi, error)
	SaveUnit(u *domain.UnitKompetensi) error
	DeleteUnit(id uint) error
}

type skkniRepository struct {
	db *gorm.DB
}

func NewSKKNIRepository(db *gorm.DB) SKKNIRepository {
	return &skkniRepository{db: db}
}

func (r *skkniRepository) Create(s *domain.SKKNI) error {
	return r.db.Create(s).Error
}

func (r *skkniRepository) FindByID(id uint) (*domain.SKKNI, error) {
	var s domain.SKKNI
	if err := r.db.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *skkniRepository) List(limit, offset int) ([]domain.SKKNI, error) {
	var rows []domain.SKKNI
	if err := r.db.Order("tahun DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skkniRepository) Save(s *domain.SKKNI) error {
	return r.db.Save(s).Error
}

func (r *skkniRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.SKKNI{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skkniRepository) CreateUnit(u *domain.UnitKompetensi) error {
	return r.db.Create(u).Error
}

func (r *skkniRepository) FindUnitByID(id uint) (*domain.UnitKompetensi, error) {
	var u domain.UnitKompetensi
	if err := r.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *skkniRepository) ListUnits(limit, offset int) ([]domain.UnitKompetensi, error) {
	var rows []domain.UnitKompetensi
	if err := r.db.Order("kode_unit ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skkniRepository) ListUnitsBySKKNI(skkniID uint) ([]domain.UnitKompetensi, error) {
	var rows []domain.UnitKompetensi
	if err := r.db.Where("id_skkni = ?", skkniID).Order("kode_unit ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *skkniRepository) SaveUnit(u *domain.UnitKompetensi) error {
	return r.db.Save(u).Error
}

func (r *skkniRepository) DeleteUnit(id uint) error {
	res := r.db.Delete(&domain.UnitKompetensi{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
