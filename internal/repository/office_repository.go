package repository

import (
	"context"

	"github.com/gardening-api/internal/domain"
	"gorm.io/gorm"
)

// OfficeRepository определяет интерфейс для чтения офисов
type OfficeRepository interface {
	FindAll(ctx context.Context) ([]domain.Office, error)
	FindByCode(ctx context.Context, code string) (*domain.Office, error)
}

type officeRepository struct {
	db *gorm.DB
}

// NewOfficeRepository создаёт новый экземпляр репозитория
func NewOfficeRepository(db *gorm.DB) OfficeRepository {
	return &officeRepository{db: db}
}

func (r *officeRepository) FindAll(ctx context.Context) ([]domain.Office, error) {
	var offices []domain.Office
	err := r.db.WithContext(ctx).
		Order("codigo_oficina ASC").
		Find(&offices).Error
	return offices, err
}

func (r *officeRepository) FindByCode(ctx context.Context, code string) (*domain.Office, error) {
	var office domain.Office
	err := r.db.WithContext(ctx).First(&office, "codigo_oficina = ?", code).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOfficeNotFound
		}
		return nil, err
	}
	return &office, nil
}
