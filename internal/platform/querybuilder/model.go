package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT binding every `db`-tagged exported field of
// model, including fields promoted from embedded structs. The suffix is
// appended raw, which is where the repositories hang their ON CONFLICT and
// RETURNING clauses.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := boundColumns(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

func boundColumns(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("insert model is nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("insert model must be a struct, got %s", value.Kind())
	}

	fields := reflect.VisibleFields(value.Type())
	cols := make([]string, 0, len(fields))
	vals := make([]any, 0, len(fields))
	for _, f := range fields {
		if f.PkgPath != "" || f.Anonymous {
			continue
		}
		col := columnName(f.Tag.Get("db"))
		if col == "" {
			continue
		}
		cols = append(cols, col)
		vals = append(vals, value.FieldByIndex(f.Index).Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("insert model has no db-tagged columns")
	}
	return cols, vals, nil
}

// columnName reads the column out of a `db` tag, ignoring options after the
// first comma. Empty and "-" tags mean the field is not bound.
func columnName(tag string) string {
	col := strings.TrimSpace(strings.Split(strings.TrimSpace(tag), ",")[0])
	if col == "-" {
		return ""
	}
	return col
}
