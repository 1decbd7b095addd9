package domain

import (
	"errors"
	"fmt"
)

// Определение бизнес-ошибок
var (
	ErrOfficeNotFound   = errors.New("office not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrEmployeeNotFound = errors.New("employee not found")

	ErrUnknownEntity       = errors.New("schema: unknown entity")
	ErrUnknownRelationship = errors.New("schema: unknown relationship")
	ErrUnknownColumn       = errors.New("schema: unknown column")

	ErrQueryNotFound    = errors.New("query not found in catalog")
	ErrInvalidParameter = errors.New("invalid query parameter")
	ErrCancelled        = errors.New("query cancelled")
)

// StoreError описывает сбой на уровне хранилища. Флаг Transient отличает
// временные сбои (обрыв соединения, таймаут), которые имеет смысл повторить
// на вызывающей стороне, от постоянных (некорректный запрос, несовпадение типов).
type StoreError struct {
	Op        string
	Err       error
	Transient bool
}

func (e *StoreError) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	return fmt.Sprintf("store error (%s) during %s: %v", kind, e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError создаёт ошибку хранилища
func NewStoreError(op string, err error, transient bool) *StoreError {
	return &StoreError{Op: op, Err: err, Transient: transient}
}
