package query

import (
	"fmt"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/schema"
	"github.com/go-playground/validator/v10"
)

// ParamType определяет тип параметра записи каталога
type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInt     ParamType = "int"
	ParamIntList ParamType = "int_list"
)

// Param описывает именованный параметр отчёта. Constraint — это тег
// go-playground/validator, применяемый к значению при привязке.
type Param struct {
	Name       string
	Type       ParamType
	Required   bool
	Default    any
	Constraint string
}

// ColumnType определяет тип колонки результата
type ColumnType string

const (
	ColString     ColumnType = "string"
	ColNullString ColumnType = "null_string"
	ColInt        ColumnType = "int"
	ColNullInt    ColumnType = "null_int"
	ColFloat      ColumnType = "float"
	ColNullFloat  ColumnType = "null_float"
)

// Column описывает одну колонку объявленной формы результата
type Column struct {
	Name string
	Type ColumnType
}

// Entry — именованный параметризованный отчёт с фиксированной формой результата
type Entry struct {
	Name    string
	Params  []Param
	Query   Query
	Columns []Column
}

// Catalog — реестр отчётов. Каждая запись при регистрации сверяется со схемой,
// поэтому ссылка на неизвестную сущность или связь фатальна на старте.
type Catalog struct {
	schema   *schema.Schema
	validate *validator.Validate
	entries  map[string]Entry
}

// NewCatalog создаёт каталог со стандартным набором отчётов
func NewCatalog(s *schema.Schema) (*Catalog, error) {
	c := &Catalog{
		schema:   s,
		validate: validator.New(),
		entries:  make(map[string]Entry),
	}
	for _, e := range reportEntries() {
		if err := c.Register(e); err != nil {
			return nil, fmt.Errorf("failed to register %q: %w", e.Name, err)
		}
	}
	return c, nil
}

// Register добавляет запись, проверяя её выражение по схеме
func (c *Catalog) Register(e Entry) error {
	if e.Name == "" {
		return fmt.Errorf("entry name must not be empty")
	}
	if _, ok := c.entries[e.Name]; ok {
		return fmt.Errorf("entry %q already registered", e.Name)
	}
	if len(e.Columns) != len(e.Query.Select) {
		return fmt.Errorf("entry %q declares %d columns but selects %d expressions",
			e.Name, len(e.Columns), len(e.Query.Select))
	}
	declared := make(map[string]bool, len(e.Params))
	for _, p := range e.Params {
		declared[p.Name] = true
	}
	if err := e.Query.Validate(c.schema, declared); err != nil {
		return err
	}
	c.entries[e.Name] = e
	return nil
}

// Get возвращает запись каталога по имени
func (c *Catalog) Get(name string) (Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", domain.ErrQueryNotFound, name)
	}
	return e, nil
}

// Names возвращает имена всех зарегистрированных отчётов
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	return names
}

// Bind проверяет входные параметры записи и подставляет значения по умолчанию.
// Любое нарушение — отсутствующий обязательный параметр, неверный тип,
// не прошедшее ограничение значение, лишний параметр — возвращает
// ErrInvalidParameter до обращения к хранилищу.
func (c *Catalog) Bind(e Entry, params map[string]any) (map[string]any, error) {
	bound := make(map[string]any, len(e.Params))

	for _, p := range e.Params {
		v, ok := params[p.Name]
		if !ok || v == nil {
			if p.Required {
				return nil, fmt.Errorf("%w: %q is required", domain.ErrInvalidParameter, p.Name)
			}
			if p.Default != nil {
				bound[p.Name] = p.Default
			}
			continue
		}

		coerced, err := coerceParam(p, v)
		if err != nil {
			return nil, err
		}
		if p.Constraint != "" {
			if err := c.validate.Var(coerced, p.Constraint); err != nil {
				return nil, fmt.Errorf("%w: %q violates constraint %q", domain.ErrInvalidParameter, p.Name, p.Constraint)
			}
		}
		bound[p.Name] = coerced
	}

	for name := range params {
		if _, ok := bound[name]; !ok {
			known := false
			for _, p := range e.Params {
				if p.Name == name {
					known = true
					break
				}
			}
			if !known {
				return nil, fmt.Errorf("%w: unknown parameter %q", domain.ErrInvalidParameter, name)
			}
		}
	}

	return bound, nil
}

func coerceParam(p Param, v any) (any, error) {
	switch p.Type {
	case ParamString:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a string, got %T", domain.ErrInvalidParameter, p.Name, v)
		}
		return s, nil
	case ParamInt:
		switch n := v.(type) {
		case int:
			return n, nil
		case int64:
			return int(n), nil
		default:
			return nil, fmt.Errorf("%w: %q must be an integer, got %T", domain.ErrInvalidParameter, p.Name, v)
		}
	case ParamIntList:
		switch ns := v.(type) {
		case []int:
			return ns, nil
		case []any:
			out := make([]int, len(ns))
			for i, e := range ns {
				n, ok := e.(int)
				if !ok {
					return nil, fmt.Errorf("%w: %q must be a list of integers", domain.ErrInvalidParameter, p.Name)
				}
				out[i] = n
			}
			return out, nil
		default:
			return nil, fmt.Errorf("%w: %q must be a list of integers, got %T", domain.ErrInvalidParameter, p.Name, v)
		}
	default:
		return nil, fmt.Errorf("%w: %q has unsupported type %q", domain.ErrInvalidParameter, p.Name, p.Type)
	}
}
