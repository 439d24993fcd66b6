// Package mapping holds the metadata both kernels need to lay out a
// message's field slots: the field number, its value type tag, and its oneof
// group, if any. THIS FILE IS FOR INTERNAL USE ONLY and is exposed simply to
// allow generated packages access.
package mapping

import (
	"github.com/pkg/errors"

	"github.com/bearlytools/talon/languages/go/field"
)

// NoOneof marks a field that is not a member of any oneof group.
const NoOneof = -1

// FieldDescr describes a field.
type FieldDescr struct {
	// Name is the name of the field as described in the schema file.
	Name string
	// Type is the value type of the field.
	Type field.Type
	// FieldNum is the field's slot number in the message.
	FieldNum uint16
	// Oneof is the oneof group index this field belongs to, or NoOneof.
	// Fields in the same group share presence: setting one clears the
	// others, and handles to two members of one group must never be live
	// at the same time.
	Oneof int

	// KeyType and ValType describe a scalar map field's entry types. Only
	// set for map fields.
	KeyType field.Type
	ValType field.Type
	// IsMap indicates the field is a scalar map. Type is ignored when set.
	IsMap bool
	// IsRepeated indicates the field is a repeated field of Type elements.
	IsRepeated bool
}

// Validate checks that the descriptor names a layout the engines can
// actually build.
func (f *FieldDescr) Validate() error {
	if f.IsMap {
		if !field.IsMapKey(f.KeyType) {
			return errors.Errorf(".%s: map key type %v is not in the scalar key set", f.Name, f.KeyType)
		}
		if !field.IsScalar(f.ValType) {
			return errors.Errorf(".%s: map value type %v is not in the scalar set", f.Name, f.ValType)
		}
		return nil
	}
	if f.IsRepeated && !field.IsScalar(f.Type) {
		return errors.Errorf(".%s: repeated element type %v is not in the scalar set", f.Name, f.Type)
	}
	if f.Type == field.FTUnknown {
		return errors.Errorf(".%s: field type is unknown", f.Name)
	}
	return nil
}

// Map is the ordered set of field descriptions for a message. The field's
// position in Fields is its slot number in the engine message block.
type Map struct {
	// Name of the message.
	Name string
	// Pkg is the package the message is in.
	Pkg string
	// Fields are the field descriptions for all fields in the message.
	Fields []*FieldDescr
}

// Validate checks every field descriptor and the oneof group numbering.
func (m *Map) Validate() error {
	groups := map[int]bool{}
	for _, entry := range m.Fields {
		if err := entry.Validate(); err != nil {
			return errors.Wrapf(err, "message %s", m.Name)
		}
		if entry.Oneof < NoOneof {
			return errors.Errorf("message %s.%s: negative oneof group %d", m.Name, entry.Name, entry.Oneof)
		}
		if entry.Oneof != NoOneof {
			groups[entry.Oneof] = true
		}
	}
	for g := range groups {
		if g >= len(m.Fields) {
			return errors.Errorf("message %s: oneof group %d out of range", m.Name, g)
		}
	}
	return nil
}

// MustValidate panics if the mapping is invalid. Generated packages call
// this from their init.
func (m *Map) MustValidate() {
	if err := m.Validate(); err != nil {
		panic(err)
	}
}

// ByName retrieves the FieldDescr by name. If the name can't be found, it
// panics.
func (m *Map) ByName(name string) *FieldDescr {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}
	panic(errors.Errorf("could not find name %q", name))
}

// OneofSiblings returns the slot numbers of every field sharing a oneof
// group with slot f, excluding f itself. Mutating f requires clearing these
// slots first.
func (m *Map) OneofSiblings(f int) []int {
	g := m.Fields[f].Oneof
	if g == NoOneof {
		return nil
	}
	var out []int
	for i, fd := range m.Fields {
		if i != f && fd.Oneof == g {
			out = append(out, i)
		}
	}
	return out
}
