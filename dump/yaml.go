package dump

import (
	"github.com/goccy/go-yaml"

	"github.com/arloliu/sbeview/format"
	"github.com/arloliu/sbeview/traits"
	"github.com/arloliu/sbeview/view"
	"github.com/arloliu/sbeview/visit"
)

// YAML renders m as a YAML mapping keyed by the message name. Fields keep their declaration
// order, groups become sequences of mappings, enums render by name and sets as the list of
// active choices. Null optionals render as null.
func YAML(m view.Message) ([]byte, error) {
	return yaml.Marshal(Tree(m))
}

// Tree returns the ordered tree YAML renders.
func Tree(m view.Message) yaml.MapSlice {
	yv := &yamlVisitor{stack: []yaml.MapSlice{nil}}
	c := m.Cursor()
	visit.VisitChildren(m, &c, yv)

	return yaml.MapSlice{{Key: m.Traits().Name, Value: yv.stack[0]}}
}

type yamlVisitor struct {
	stack []yaml.MapSlice
}

func (yv *yamlVisitor) add(key string, value any) {
	top := len(yv.stack) - 1
	yv.stack[top] = append(yv.stack[top], yaml.MapItem{Key: key, Value: value})
}

func (yv *yamlVisitor) push() {
	yv.stack = append(yv.stack, yaml.MapSlice{})
}

func (yv *yamlVisitor) pop() yaml.MapSlice {
	top := yv.stack[len(yv.stack)-1]
	yv.stack = yv.stack[:len(yv.stack)-1]

	return top
}

func (yv *yamlVisitor) OnPrimitive(p view.Primitive, f *traits.Field) bool {
	yv.add(f.Name, primitiveValue(p))
	return false
}

func primitiveValue(p view.Primitive) any {
	t := p.Traits()
	switch {
	case t.Primitive == format.Char && (t.IsArray() || p.IsConstant()):
		return p.String()
	case p.IsNull():
		return nil
	case !t.IsArray():
		return p.Value(0)
	}

	values := make([]any, p.Len())
	for i := range values {
		values[i] = p.Value(i)
	}

	return values
}

func (yv *yamlVisitor) OnEnum(e view.Enum, f *traits.Field) bool {
	yv.add(f.Name, e.String())
	return false
}

func (yv *yamlVisitor) OnSet(s view.Set, f *traits.Field) bool {
	active := []string{}
	for c, on := range s.Choices() {
		if on {
			active = append(active, c.Name)
		}
	}
	yv.add(f.Name, active)

	return false
}

func (yv *yamlVisitor) OnComposite(comp view.Composite, f *traits.Field) bool {
	yv.push()
	stop := visit.VisitCompositeChildren(comp, yv)
	yv.add(f.Name, yv.pop())

	return stop
}

func (yv *yamlVisitor) OnGroup(g view.Group, c *view.Cursor) bool {
	entries := make([]yaml.MapSlice, 0, g.Len())
	for _, e := range g.Range(c) {
		yv.push()
		stop := visit.VisitEntryChildren(e, c, yv)
		entries = append(entries, yv.pop())
		if stop {
			return true
		}
	}
	yv.add(g.Traits().Name, entries)

	return false
}

func (yv *yamlVisitor) OnData(d view.Data) bool {
	yv.add(d.Traits().Name, d.String())
	return false
}
