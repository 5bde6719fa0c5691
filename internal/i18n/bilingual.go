package i18n

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"gorm.io/gorm/schema"
)

// ===========================================================================
// Bilingual field accessor
// Records keep the native text in <field> (or <field>_zh) and the English
// text in <field>_en. Column names follow the gorm tags of the struct.
// ===========================================================================

var naming = schema.NamingStrategy{}

// columnIndex caches column name -> field index path per struct type
var columnIndex sync.Map // map[reflect.Type]map[string][]int

// L returns the English variant of field when lang is "en" and that variant
// is non-empty, otherwise the native value. record may be a struct, a
// pointer to a struct or a map[string]any. Unknown fields yield "".
func L(lang string, record any, field string) string {
	if lang == LangEn {
		if v, ok := lookup(record, field+"_en"); ok && v != "" {
			return v
		}
	}
	if v, ok := lookup(record, field); ok {
		return v
	}
	v, _ := lookup(record, field+"_zh")
	return v
}

func lookup(record any, column string) (string, bool) {
	switch r := record.(type) {
	case nil:
		return "", false
	case map[string]any:
		v, ok := r[column]
		if !ok || v == nil {
			return "", ok
		}
		return toString(v), true
	case map[string]string:
		v, ok := r[column]
		return v, ok
	}

	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "", false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}

	index, ok := columnsOf(rv.Type())[column]
	if !ok {
		return "", false
	}
	fv, err := rv.FieldByIndexErr(index)
	if err != nil {
		return "", false
	}
	return toString(fv.Interface()), true
}

func columnsOf(t reflect.Type) map[string][]int {
	if cached, ok := columnIndex.Load(t); ok {
		return cached.(map[string][]int)
	}
	columns := make(map[string][]int)
	collectColumns(t, nil, columns)
	columnIndex.Store(t, columns)
	return columns
}

func collectColumns(t reflect.Type, parent []int, into map[string][]int) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		index := append(append([]int{}, parent...), i)

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectColumns(f.Type, index, into)
			continue
		}
		if !f.IsExported() {
			continue
		}
		into[columnName(f)] = index
	}
}

func columnName(f reflect.StructField) string {
	for _, part := range strings.Split(f.Tag.Get("gorm"), ";") {
		if name, ok := strings.CutPrefix(strings.TrimSpace(part), "column:"); ok {
			return name
		}
	}
	return naming.ColumnName("", f.Name)
}

func toString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case *string:
		if s == nil {
			return ""
		}
		return *s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
