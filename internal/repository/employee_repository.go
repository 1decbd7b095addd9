package repository

import (
	"context"

	"github.com/gardening-api/internal/domain"
	"gorm.io/gorm"
)

// EmployeeRepository определяет интерфейс для чтения сотрудников
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByNumber(ctx context.Context, number int) (*domain.Employee, error)
	ManagerIndex(ctx context.Context) (map[int]*int, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).
		Order("codigo_empleado ASC").
		Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) FindByNumber(ctx context.Context, number int) (*domain.Employee, error) {
	var employee domain.Employee
	err := r.db.WithContext(ctx).First(&employee, "codigo_empleado = ?", number).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}

// ManagerIndex возвращает дерево подчинённости в виде индекса
// "сотрудник -> необязательный руководитель"; у корневых сотрудников
// руководителя нет
func (r *employeeRepository) ManagerIndex(ctx context.Context) (map[int]*int, error) {
	rows, err := r.db.WithContext(ctx).
		Raw("SELECT codigo_empleado, codigo_jefe FROM empleado").
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int]*int)
	for rows.Next() {
		var number int
		var manager *int
		if err := rows.Scan(&number, &manager); err != nil {
			return nil, err
		}
		index[number] = manager
	}

	return index, rows.Err()
}
