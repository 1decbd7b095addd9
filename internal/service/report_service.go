package service

import (
	"context"
	"time"

	"github.com/gardening-api/internal/query"
)

// ReportService определяет интерфейс выполнения отчётов каталога
type ReportService interface {
	Execute(ctx context.Context, name string, params map[string]any) ([]query.Row, error)
	Names() []string
}

type reportService struct {
	catalog  *query.Catalog
	executor *query.Executor
	timeout  time.Duration
}

// NewReportService создаёт новый экземпляр сервиса. Ненулевой timeout
// ограничивает каждое выполнение отчёта.
func NewReportService(catalog *query.Catalog, executor *query.Executor, timeout time.Duration) ReportService {
	return &reportService{
		catalog:  catalog,
		executor: executor,
		timeout:  timeout,
	}
}

// Execute выполняет именованный отчёт. Неизвестное имя и некорректные
// параметры отсеиваются до обращения к хранилищу.
func (s *reportService) Execute(ctx context.Context, name string, params map[string]any) ([]query.Row, error) {
	entry, err := s.catalog.Get(name)
	if err != nil {
		return nil, err
	}

	bound, err := s.catalog.Bind(entry, params)
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return s.executor.Execute(ctx, entry, bound)
}

func (s *reportService) Names() []string {
	return s.catalog.Names()
}
