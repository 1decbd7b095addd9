package service

import (
	"context"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/repository"
)

// EmployeeService определяет интерфейс бизнес-логики для сотрудников
type EmployeeService interface {
	GetAll(ctx context.Context) ([]domain.Employee, error)
	GetByNumber(ctx context.Context, number int) (*domain.Employee, error)
	GetManagerIndex(ctx context.Context) (map[int]*int, error)
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) GetAll(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.FindAll(ctx)
}

func (s *employeeService) GetByNumber(ctx context.Context, number int) (*domain.Employee, error) {
	return s.employeeRepo.FindByNumber(ctx, number)
}

func (s *employeeService) GetManagerIndex(ctx context.Context) (map[int]*int, error) {
	return s.employeeRepo.ManagerIndex(ctx)
}
