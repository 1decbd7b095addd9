package query

import (
	"fmt"
	"strings"

	"github.com/gardening-api/internal/domain"
	"github.com/gardening-api/internal/schema"
)

// Op определяет операцию условия
type Op string

const (
	OpEq        Op = "="
	OpIn        Op = "IN"
	OpNotIn     Op = "NOT IN"
	OpIsNull    Op = "IS NULL"
	OpNotNull   Op = "IS NOT NULL"
	OpExists    Op = "EXISTS"
	OpNotExists Op = "NOT EXISTS"
	// OpHasPrefix транслируется в LIKE со значением параметра и суффиксом "%"
	OpHasPrefix Op = "HAS PREFIX"
	// OpEqColumn сравнивает две колонки, используется для коррелированных подзапросов
	OpEqColumn Op = "= COLUMN"
)

// Condition описывает одно условие фильтрации. Значение берётся либо из
// именованного параметра (Param), либо из литерала каталога (Value), и в обоих
// случаях привязывается плейсхолдером — в текст запроса оно не попадает никогда.
type Condition struct {
	Column string
	Op     Op
	Param  string
	Value  any
	Ref    string
	Sub    *Query
}

// Join описывает соединение двух сущностей; условие берётся из схемы.
// Left сохраняет строки левой стороны без пары.
type Join struct {
	From string
	To   string
	Left bool
}

// Query — декларативное реляционное выражение записи каталога
type Query struct {
	Distinct bool
	Select   []string
	From     string
	Joins    []Join
	Where    []Condition
	GroupBy  []string
	OrderBy  []string
}

// Validate статически сверяет выражение со схемой: все сущности, связи и
// колонки должны существовать, все параметры условий — быть объявлены записью
func (q *Query) Validate(s *schema.Schema, declared map[string]bool) error {
	if _, err := s.Entity(q.From); err != nil {
		return err
	}
	for _, j := range q.Joins {
		if _, err := s.Entity(j.From); err != nil {
			return err
		}
		if _, err := s.Entity(j.To); err != nil {
			return err
		}
		if _, err := s.Relationship(j.From, j.To); err != nil {
			return err
		}
	}
	for _, expr := range q.Select {
		if err := checkColumn(s, expr); err != nil {
			return err
		}
	}
	for _, c := range q.Where {
		if c.Param != "" && !declared[c.Param] {
			return fmt.Errorf("%w: condition references undeclared parameter %q", domain.ErrInvalidParameter, c.Param)
		}
		if err := checkColumn(s, c.Column); err != nil {
			return err
		}
		if err := checkColumn(s, c.Ref); err != nil {
			return err
		}
		if c.Sub != nil {
			if err := c.Sub.Validate(s, declared); err != nil {
				return err
			}
		}
	}
	for _, expr := range q.GroupBy {
		if err := checkColumn(s, expr); err != nil {
			return err
		}
	}
	for _, expr := range q.OrderBy {
		if err := checkColumn(s, expr); err != nil {
			return err
		}
	}
	return nil
}

// checkColumn сверяет ссылку вида "таблица.колонка" со схемой;
// выражения и литералы пропускаются без проверки
func checkColumn(s *schema.Schema, expr string) error {
	if expr == "" || strings.ContainsAny(expr, "( ") || !strings.Contains(expr, ".") {
		return nil
	}
	table, column, _ := strings.Cut(expr, ".")
	_, err := s.Column(table, column)
	return err
}

// Build собирает SQL-выражение и список аргументов. Привязанные параметры
// уже провалидированы каталогом; в текст запроса подставляются только
// плейсхолдеры и имена таблиц/колонок из скомпилированного каталога.
func (q *Query) Build(s *schema.Schema, params map[string]any) (string, []any, error) {
	var sb strings.Builder
	var args []any

	sb.WriteString("SELECT ")
	if q.Distinct {
		sb.WriteString("DISTINCT ")
	}
	sb.WriteString(strings.Join(q.Select, ", "))

	from, err := s.Entity(q.From)
	if err != nil {
		return "", nil, err
	}
	sb.WriteString(" FROM ")
	sb.WriteString(from.Table)

	for _, j := range q.Joins {
		rel, err := s.Relationship(j.From, j.To)
		if err != nil {
			return "", nil, err
		}
		owner, err := s.Entity(rel.From)
		if err != nil {
			return "", nil, err
		}
		dependent, err := s.Entity(rel.To)
		if err != nil {
			return "", nil, err
		}
		target, err := s.Entity(j.To)
		if err != nil {
			return "", nil, err
		}
		kind := "JOIN"
		if j.Left {
			kind = "LEFT JOIN"
		}
		fmt.Fprintf(&sb, " %s %s ON %s.%s = %s.%s",
			kind, target.Table, owner.Table, rel.FromColumn, dependent.Table, rel.ToColumn)
	}

	if len(q.Where) > 0 {
		sb.WriteString(" WHERE ")
		for i, c := range q.Where {
			if i > 0 {
				sb.WriteString(" AND ")
			}
			if err := c.render(&sb, &args, s, params); err != nil {
				return "", nil, err
			}
		}
	}

	if len(q.GroupBy) > 0 {
		sb.WriteString(" GROUP BY ")
		sb.WriteString(strings.Join(q.GroupBy, ", "))
	}
	if len(q.OrderBy) > 0 {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(q.OrderBy, ", "))
	}

	return sb.String(), args, nil
}

func (c *Condition) render(sb *strings.Builder, args *[]any, s *schema.Schema, params map[string]any) error {
	switch c.Op {
	case OpEq:
		v, err := c.value(params)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s = ?", c.Column)
		*args = append(*args, v)
	case OpHasPrefix:
		v, err := c.value(params)
		if err != nil {
			return err
		}
		prefix, ok := v.(string)
		if !ok {
			return fmt.Errorf("%w: parameter %q must be a string for prefix match", domain.ErrInvalidParameter, c.Param)
		}
		fmt.Fprintf(sb, "%s LIKE ?", c.Column)
		*args = append(*args, prefix+"%")
	case OpIn, OpNotIn:
		if c.Sub != nil {
			sub, subArgs, err := c.Sub.Build(s, params)
			if err != nil {
				return err
			}
			fmt.Fprintf(sb, "%s %s (%s)", c.Column, c.Op, sub)
			*args = append(*args, subArgs...)
			return nil
		}
		v, err := c.value(params)
		if err != nil {
			return err
		}
		values, err := toList(v)
		if err != nil {
			return fmt.Errorf("%w: parameter %q: %v", domain.ErrInvalidParameter, c.Param, err)
		}
		if len(values) == 0 {
			return fmt.Errorf("%w: parameter %q must not be empty", domain.ErrInvalidParameter, c.Param)
		}
		placeholders := strings.Repeat("?, ", len(values))
		fmt.Fprintf(sb, "%s %s (%s)", c.Column, c.Op, strings.TrimSuffix(placeholders, ", "))
		*args = append(*args, values...)
	case OpIsNull, OpNotNull:
		fmt.Fprintf(sb, "%s %s", c.Column, c.Op)
	case OpExists, OpNotExists:
		sub, subArgs, err := c.Sub.Build(s, params)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s (%s)", c.Op, sub)
		*args = append(*args, subArgs...)
	case OpEqColumn:
		fmt.Fprintf(sb, "%s = %s", c.Column, c.Ref)
	default:
		return fmt.Errorf("unsupported condition operation %q", c.Op)
	}
	return nil
}

// value возвращает значение условия: параметр либо литерал каталога
func (c *Condition) value(params map[string]any) (any, error) {
	if c.Param != "" {
		v, ok := params[c.Param]
		if !ok {
			return nil, fmt.Errorf("%w: missing parameter %q", domain.ErrInvalidParameter, c.Param)
		}
		return v, nil
	}
	return c.Value, nil
}

func toList(v any) ([]any, error) {
	switch vs := v.(type) {
	case []any:
		return vs, nil
	case []int:
		out := make([]any, len(vs))
		for i, e := range vs {
			out[i] = e
		}
		return out, nil
	case []string:
		out := make([]any, len(vs))
		for i, e := range vs {
			out[i] = e
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
}
