package query

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/schema"
	"gorm.io/gorm"
)

// Executor выполняет записи каталога против реляционного хранилища.
// Выполнение строго read-only: собранное выражение всегда SELECT,
// значения вызывающей стороны привязываются только плейсхолдерами.
type Executor struct {
	db     *gorm.DB
	schema *schema.Schema
}

// NewExecutor создаёт новый исполнитель
func NewExecutor(db *gorm.DB, s *schema.Schema) *Executor {
	return &Executor{db: db, schema: s}
}

// Execute выполняет запись каталога с уже привязанными параметрами одним
// обращением к хранилищу. Результат либо полностью материализован, либо
// типизированная ошибка — частичных строк не бывает.
func (ex *Executor) Execute(ctx context.Context, e Entry, bound map[string]any) ([]Row, error) {
	stmt, args, err := e.Query.Build(ex.schema, bound)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(stmt, "SELECT ") {
		return nil, domain.NewStoreError("build", fmt.Errorf("statement is not read-only: %q", stmt), false)
	}

	// Отменённый контекст не должен породить обращение к хранилищу
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	}

	rows, err := ex.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, classify("execute", err)
	}
	defer rows.Close()

	var raw [][]any
	for rows.Next() {
		values := make([]any, len(e.Columns))
		ptrs := make([]any, len(e.Columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, classify("scan", err)
		}
		raw = append(raw, values)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("fetch", err)
	}

	result, err := Project(e.Columns, raw)
	if err != nil {
		return nil, domain.NewStoreError("project", err, false)
	}
	return result, nil
}

// classify разделяет сбои хранилища на отмену, временные и постоянные
func classify(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrCancelled, err)
	}

	var netErr net.Error
	transient := errors.As(err, &netErr) ||
		errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, io.EOF)

	if !transient {
		msg := strings.ToLower(err.Error())
		for _, marker := range []string{
			"connection refused",
			"connection reset",
			"broken pipe",
			"timeout",
			"database is locked",
			"database table is locked",
			"too many connections",
		} {
			if strings.Contains(msg, marker) {
				transient = true
				break
			}
		}
	}

	return domain.NewStoreError(op, err, transient)
}
