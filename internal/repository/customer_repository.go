package repository

import (
	"context"

	"github.com/gardening-api/internal/domain"
	"gorm.io/gorm"
)

// CustomerRepository определяет интерфейс для чтения клиентов
type CustomerRepository interface {
	FindAll(ctx context.Context) ([]domain.Customer, error)
	FindByNumber(ctx context.Context, number int) (*domain.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository создаёт новый экземпляр репозитория
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) FindAll(ctx context.Context) ([]domain.Customer, error) {
	var customers []domain.Customer
	err := r.db.WithContext(ctx).
		Order("codigo_cliente ASC").
		Find(&customers).Error
	return customers, err
}

func (r *customerRepository) FindByNumber(ctx context.Context, number int) (*domain.Customer, error) {
	var customer domain.Customer
	err := r.db.WithContext(ctx).First(&customer, "codigo_cliente = ?", number).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return &customer, nil
}
