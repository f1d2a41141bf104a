package util

import (
	"encoding/csv"
	"io"
	"os"
	"reflect"
	"strconv"
)

//*******************************************
// csv reading
//*******************************************

type csv_field struct {
	index int
	row   int
	kind  reflect.Kind
}

// Maps struct fields tagged with `csv:"column"` onto the columns named in the
// file header. Untagged fields and columns missing from the header are skipped.
func build_csv_fields(typ reflect.Type, header []string) List[csv_field] {
	columns := NewDict[string, int](len(header))
	for i, name := range header {
		columns[name] = i
	}

	fields := NewList[csv_field](typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag := field.Tag.Get("csv")
		if tag == "" || !columns.ContainsKey(tag) {
			continue
		}
		row := columns[tag]
		switch field.Type.Kind() {
		case reflect.Bool:
			fields.Add(csv_field{i, row, reflect.Bool})
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fields.Add(csv_field{i, row, reflect.Int})
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fields.Add(csv_field{i, row, reflect.Uint})
		case reflect.Float32, reflect.Float64:
			fields.Add(csv_field{i, row, reflect.Float64})
		case reflect.String:
			fields.Add(csv_field{i, row, reflect.String})
		}
	}
	return fields
}

func set_csv_field(target reflect.Value, field csv_field, value string) {
	if value == "" {
		return
	}
	f := target.Field(field.index)
	switch field.kind {
	case reflect.Bool:
		v, _ := strconv.ParseBool(value)
		f.SetBool(v)
	case reflect.Int:
		v, _ := strconv.ParseInt(value, 10, 64)
		f.SetInt(v)
	case reflect.Uint:
		v, _ := strconv.ParseUint(value, 10, 64)
		f.SetUint(v)
	case reflect.Float64:
		v, _ := strconv.ParseFloat(value, 64)
		f.SetFloat(v)
	case reflect.String:
		f.SetString(value)
	}
}

// Iterates the rows of a csv file as values of T.
//
// Columns are matched by header name against `csv` struct tags. Malformed rows
// are skipped rather than aborting the iteration.
func ReadCSVFromFile[T any](filename string, delimiter rune) func(yield func(T) bool) {
	return func(yield func(T) bool) {
		file, err := os.Open(filename)
		if err != nil {
			panic(err)
		}
		defer file.Close()

		reader := csv.NewReader(file)
		reader.Comma = delimiter
		reader.FieldsPerRecord = -1
		header, err := reader.Read()
		if err != nil {
			panic(err)
		}

		var val T
		typ := reflect.TypeOf(val)
		fields := build_csv_fields(typ, header)

		for {
			record, err := reader.Read()
			if err == io.EOF {
				break
			} else if err != nil {
				continue
			}
			t := reflect.New(typ).Elem()
			for _, field := range fields {
				if field.row >= len(record) {
					continue
				}
				set_csv_field(t, field, record[field.row])
			}
			if !yield(t.Interface().(T)) {
				break
			}
		}
	}
}
