package service

import (
	"context"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/repository"
)

// CustomerService определяет интерфейс бизнес-логики для клиентов
type CustomerService interface {
	GetAll(ctx context.Context) ([]domain.Customer, error)
	GetByNumber(ctx context.Context, number int) (*domain.Customer, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService создаёт новый экземпляр сервиса
func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) GetAll(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.FindAll(ctx)
}

func (s *customerService) GetByNumber(ctx context.Context, number int) (*domain.Customer, error) {
	return s.customerRepo.FindByNumber(ctx, number)
}
