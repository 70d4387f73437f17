package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/maskecs/ecs"
)

// NewComponentInspectorComponent returns an inspector with nothing selected.
func NewComponentInspectorComponent() ComponentInspectorComponent {
	return ComponentInspectorComponent{fields: make(fieldCache)}
}

func (ci *ComponentInspectorComponent) fieldsOf(t reflect.Type) []FieldInfo {
	if ci.fields == nil {
		ci.fields = make(fieldCache)
	}
	return ci.fields.fields(t)
}

// Render draws the components of the entity with the given id, if it is alive.
func (ci *ComponentInspectorComponent) Render(world *ecs.World, selectedEntityID ecs.EntityID) {
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ci.selectedEntityID = selectedEntityID

	if !ci.selectedEntityID.Valid() {
		imgui.Text("No entity selected")
		imgui.End()
		return
	}

	entity, ok := world.Entity(ci.selectedEntityID)
	if !ok {
		imgui.Text(fmt.Sprintf("Entity %s no longer exists", ci.selectedEntityID))
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Entity ID: %s", entity.ID()))
	imgui.Text(fmt.Sprintf("Archetype: %s", entity.Archetype()))
	imgui.Separator()

	for _, component := range entity.Components() {
		if imgui.TreeNodeStr(component.Type.String()) {
			ci.renderComponent(component)
			imgui.TreePop()
		}
	}

	imgui.End()
}

// renderComponent draws the fields of a component payload. Payloads stored
// behind a pointer are editable in place; anything else is shown read-only.
func (ci *ComponentInspectorComponent) renderComponent(component *ecs.Component) {
	val, editable := inspectable(component.Data)
	if !val.IsValid() {
		imgui.Text("<no data>")
		return
	}

	if val.Kind() != reflect.Struct {
		ci.renderField("value", val, FieldInfo{Type: val.Type()}, editable)
		return
	}

	for _, field := range ci.fieldsOf(val.Type()) {
		ci.renderField(field.Name, field.value(val), field, editable)
	}
}

// inspectable dereferences a payload and reports whether its fields can be set.
func inspectable(data any) (reflect.Value, bool) {
	val := reflect.ValueOf(data)
	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return reflect.Value{}, false
		}
		return val.Elem(), true
	}
	return val, false
}

func (ci *ComponentInspectorComponent) renderField(name string, val reflect.Value, field FieldInfo, editable bool) {
	if !val.IsValid() {
		imgui.Text(fmt.Sprintf("%s: <invalid>", name))
		return
	}

	if field.IsPointer && val.Kind() == reflect.Ptr && val.IsNil() {
		imgui.Text(fmt.Sprintf("%s: nil", name))
		return
	}

	if !editable || !val.CanSet() {
		imgui.Text(fmt.Sprintf("%s: %s", name, formatValue(val)))
		return
	}

	switch val.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := int32(val.Int())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) {
			setInt(val, int64(v))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := int32(val.Uint())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputInt(fmt.Sprintf("##%s", name), &v) && v >= 0 {
			setUint(val, uint64(v))
		}

	case reflect.Float32, reflect.Float64:
		v := float32(val.Float())
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(fmt.Sprintf("##%s", name), &v) {
			setFloat(val, float64(v))
		}

	case reflect.Bool:
		v := val.Bool()
		if imgui.Checkbox(name, &v) {
			val.SetBool(v)
		}

	case reflect.String:
		v := val.String()
		imgui.Text(fmt.Sprintf("%s:", name))
		imgui.SameLine()
		imgui.SetNextItemWidth(200)
		if imgui.InputTextWithHint(fmt.Sprintf("##%s", name), "", &v, imgui.InputTextFlagsNone, nil) {
			val.SetString(v)
		}

	case reflect.Struct:
		if imgui.TreeNodeStr(name) {
			for _, nf := range ci.fieldsOf(val.Type()) {
				ci.renderField(nf.Name, nf.value(val), nf, editable)
			}
			imgui.TreePop()
		}

	default:
		imgui.Text(fmt.Sprintf("%s: %s", name, formatValue(val)))
	}
}

func formatValue(val reflect.Value) string {
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("[%d items]", val.Len())
	case reflect.Map:
		return fmt.Sprintf("map[%d items]", val.Len())
	case reflect.Func:
		if val.IsNil() {
			return "func(nil)"
		}
		return "func"
	}
	if !val.CanInterface() {
		return "<unexported>"
	}
	return fmt.Sprintf("%v", val.Interface())
}

// setInt stores v unless it overflows the field's type.
func setInt(field reflect.Value, v int64) {
	if field.CanSet() && !field.OverflowInt(v) {
		field.SetInt(v)
	}
}

func setUint(field reflect.Value, v uint64) {
	if field.CanSet() && !field.OverflowUint(v) {
		field.SetUint(v)
	}
}

func setFloat(field reflect.Value, v float64) {
	if field.CanSet() && !field.OverflowFloat(v) {
		field.SetFloat(v)
	}
}
