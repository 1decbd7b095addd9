package service

import (
	"context"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/repository"
)

// OfficeService определяет интерфейс бизнес-логики для офисов
type OfficeService interface {
	GetAll(ctx context.Context) ([]domain.Office, error)
	GetByCode(ctx context.Context, code string) (*domain.Office, error)
}

type officeService struct {
	officeRepo repository.OfficeRepository
}

// NewOfficeService создаёт новый экземпляр сервиса
func NewOfficeService(officeRepo repository.OfficeRepository) OfficeService {
	return &officeService{officeRepo: officeRepo}
}

func (s *officeService) GetAll(ctx context.Context) ([]domain.Office, error) {
	return s.officeRepo.FindAll(ctx)
}

func (s *officeService) GetByCode(ctx context.Context, code string) (*domain.Office, error) {
	return s.officeRepo.FindByCode(ctx, code)
}
