package repository

import (
	"errors"

	"github.com/lspdigital/sertifikasi_service/internal/domain"
	"gorm.io/gorm"
)

type TUKRepository interface {
	Create(t *domain.TUK) error
	CreateBatch(rows []domain.TUK) error
	CreateWithAccount(t *domain.TUK, user *domain.User, provision func(tx *gorm.DB, user *domain.User) error) error
	FindByID(id uint) (*domain.TUK, error)
	List(limit, offset int) ([]domain.TUK, error)
	Save(t *domain.TUK) error
	Delete(id uint) error
}

type tukRepository struct {
	db *gorm.DB
}

func NewTUKRepository(db *gorm.DB) TUKRepository {
	return &tukRepository{db: db}
}

func (r *tukRepository) Create(t *domain.TUK) error {
	return r.db.Create(t).Error
}

func (r *tukRepository) CreateBatch(rows []domain.TUK) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
}

// CreateWithAccount creates the venue and its login account together or not
// at all, same shape as asesi provisioning.
func (r *tukRepository) CreateWithAccount(t *domain.TUK, user *domain.User, provision func(tx *gorm.DB, user *domain.User) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := provision(tx, user); err != nil {
			return err
		}
		t.UserID = &user.ID
		return tx.Create(t).Error
	})
}

func (r *tukRepository) FindByID(id uint) (*domain.TUK, error) {
	var t domain.TUK
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *tukRepository) List(limit, offset int) ([]domain.TUK, error) {
	var rows []domain.TUK
	if err := r.db.Order("nama_tuk ASC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *tukRepository) Save(t *domain.TUK) error {
	return r.db.Save(t).Error
}

func (r *tukRepository) Delete(id uint) error {
	res := r.db.Delete(&domain.TUK{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
