package query

import (
	"fmt"
	"math"
	"time"
)

// Row — одна спроецированная строка результата
type Row map[string]any

// Project переводит сырые кортежи в объявленную форму записи каталога.
// Числовые агрегаты приводятся к int64 независимо от представления драйвера,
// текст нормализуется к string, NULL в nullable-колонках сохраняется как
// явный nil, а не значение по умолчанию.
func Project(cols []Column, raw [][]any) ([]Row, error) {
	result := make([]Row, 0, len(raw))
	for _, tuple := range raw {
		if len(tuple) != len(cols) {
			return nil, fmt.Errorf("row has %d values, shape declares %d columns", len(tuple), len(cols))
		}
		row := make(Row, len(cols))
		for i, col := range cols {
			v, err := projectValue(col, tuple[i])
			if err != nil {
				return nil, err
			}
			row[col.Name] = v
		}
		result = append(result, row)
	}
	return result, nil
}

func projectValue(col Column, v any) (any, error) {
	if v == nil {
		switch col.Type {
		case ColNullString, ColNullInt, ColNullFloat:
			return nil, nil
		default:
			return nil, fmt.Errorf("column %q is not nullable but holds NULL", col.Name)
		}
	}

	switch col.Type {
	case ColString, ColNullString:
		return toString(col, v)
	case ColInt, ColNullInt:
		return toInt64(col, v)
	case ColFloat, ColNullFloat:
		return toFloat64(col, v)
	default:
		return nil, fmt.Errorf("column %q has unsupported type %q", col.Name, col.Type)
	}
}

func toString(col Column, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	case time.Time:
		return s.Format("2006-01-02"), nil
	default:
		return "", fmt.Errorf("column %q: expected text, got %T", col.Name, v)
	}
}

func toInt64(col Column, v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int32:
		return int64(n), nil
	case int:
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("column %q: value %v is not integral", col.Name, n)
		}
		return int64(n), nil
	default:
		return 0, fmt.Errorf("column %q: expected integer, got %T", col.Name, v)
	}
}

func toFloat64(col Column, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("column %q: expected number, got %T", col.Name, v)
	}
}
