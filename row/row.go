package row

import "fmt"

// Row is a positional record of typed fields. Operators treat rows as
// immutable pass-through values: a row is read for its event-time field and
// forwarded downstream unchanged. A nil field means SQL NULL.
type Row struct {
	fields []any
}

func Of(fields ...any) Row {
	return Row{fields: fields}
}

func (r Row) Arity() int {
	return len(r.fields)
}

func (r Row) IsNullAt(index int) bool {
	return r.fields[index] == nil
}

func (r Row) Field(index int) any {
	return r.fields[index]
}

// Int64 returns the field at index as int64 and panics on NULL or a
// mistyped field, mirroring the behavior of typed row accessors.
func (r Row) Int64(index int) int64 {
	value, ok := r.fields[index].(int64)
	if !ok {
		panic(fmt.Sprintf("row field %d is not a non-null int64: %#v", index, r.fields[index]))
	}
	return value
}

func (r Row) String() string {
	return fmt.Sprintf("%v", r.fields)
}
