package debugui

import "reflect"

// FieldInfo describes one exported field of a component payload.
// Pointer fields report the type they point to.
type FieldInfo struct {
	Name      string
	Type      reflect.Type
	Kind      reflect.Kind
	Index     int
	IsPointer bool
}

// fieldCache memoizes the exported fields of payload struct types. Each
// inspector owns one and only touches it from the render goroutine.
type fieldCache map[reflect.Type][]FieldInfo

// fields returns the exported fields of t, or nil when t is not a struct.
func (fc fieldCache) fields(t reflect.Type) []FieldInfo {
	if cached, ok := fc[t]; ok {
		return cached
	}

	var out []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			if f := t.Field(i); f.IsExported() {
				out = append(out, newFieldInfo(f, i))
			}
		}
	}
	fc[t] = out
	return out
}

func newFieldInfo(f reflect.StructField, index int) FieldInfo {
	typ := f.Type
	isPointer := typ.Kind() == reflect.Pointer
	if isPointer {
		typ = typ.Elem()
	}
	return FieldInfo{
		Name:      f.Name,
		Type:      typ,
		Kind:      typ.Kind(),
		Index:     index,
		IsPointer: isPointer,
	}
}

// value reads field f of the struct value owner, following a non-nil pointer.
func (f FieldInfo) value(owner reflect.Value) reflect.Value {
	v := owner.Field(f.Index)
	if f.IsPointer && !v.IsNil() {
		return v.Elem()
	}
	return v
}
