// Package editor models a 3D scene as plain owned entities and runs the
// batch material workflows on it.
//
// Editor is the seam to a real scene editor. Scene is the in-memory
// implementation used by the command line tool and the tests.
package editor

import (
	"fmt"
	"slices"

	"github.com/gogpu/matcolor"
)

// DefaultRoughness is the roughness of a freshly created material.
const DefaultRoughness = 0.5

// Kind is an object type as reported by the editor, e.g. "MESH".
type Kind string

// Object kinds the workflows act on. Other kinds are kept as is.
const (
	KindMesh  Kind = "MESH"
	KindEmpty Kind = "EMPTY"
)

// Material is a named surface description with a linear base color.
type Material struct {
	Name      string
	BaseColor matcolor.RGBA
	Roughness float64
}

// Mesh is geometry data. Only the vertex-color layer names are modeled.
type Mesh struct {
	Name         string
	VertexColors []string
}

// Object is a scene object with optional geometry and material slots.
// A nil slot is an empty slot.
type Object struct {
	Name     string
	Kind     Kind
	Selected bool
	Mesh     *Mesh
	Slots    []*Material
}

// Editor is the subset of a scene editor the workflows need.
type Editor interface {
	// SelectedObjects returns the selected objects in scene order.
	SelectedObjects() []*Object
	// Material returns the material with the exact name.
	Material(name string) (*Material, bool)
	// NewMaterial adds a white material. The name is made unique.
	NewMaterial(name string) *Material
	// CopyMaterial adds a copy of src under a unique form of name.
	CopyMaterial(src *Material, name string) *Material
	// ReplaceMaterial removes old, points every slot that used it at repl
	// and gives repl the name of old.
	ReplaceMaterial(old, repl *Material)
	// RenameMaterial renames m to a unique form of name.
	RenameMaterial(m *Material, name string)
	// RenameObject renames o to a unique form of name.
	RenameObject(o *Object, name string)
	// RemoveObject unlinks o from the scene.
	RemoveObject(o *Object)
}

// Scene owns objects, materials and meshes. It implements Editor.
type Scene struct {
	Objects   []*Object
	Materials []*Material
	Meshes    []*Mesh
}

var _ Editor = (*Scene)(nil)

// SelectedObjects implements Editor.
func (s *Scene) SelectedObjects() []*Object {
	var out []*Object
	for _, o := range s.Objects {
		if o.Selected {
			out = append(out, o)
		}
	}
	return out
}

// Material implements Editor.
func (s *Scene) Material(name string) (*Material, bool) {
	for _, m := range s.Materials {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Object returns the object with the exact name.
func (s *Scene) Object(name string) (*Object, bool) {
	for _, o := range s.Objects {
		if o.Name == name {
			return o, true
		}
	}
	return nil, false
}

// NewMaterial implements Editor.
func (s *Scene) NewMaterial(name string) *Material {
	m := &Material{
		Name:      s.uniqueMaterialName(name),
		BaseColor: matcolor.White,
		Roughness: DefaultRoughness,
	}
	s.Materials = append(s.Materials, m)
	return m
}

// CopyMaterial implements Editor.
func (s *Scene) CopyMaterial(src *Material, name string) *Material {
	m := &Material{
		Name:      s.uniqueMaterialName(name),
		BaseColor: src.BaseColor,
		Roughness: src.Roughness,
	}
	s.Materials = append(s.Materials, m)
	return m
}

// ReplaceMaterial implements Editor. repl takes the position of old in
// s.Materials, so snapshots keep their order.
func (s *Scene) ReplaceMaterial(old, repl *Material) {
	if old == repl {
		return
	}
	for _, o := range s.Objects {
		for i, m := range o.Slots {
			if m == old {
				o.Slots[i] = repl
			}
		}
	}
	s.Materials = slices.DeleteFunc(s.Materials, func(m *Material) bool { return m == repl })
	if i := slices.Index(s.Materials, old); i >= 0 {
		s.Materials[i] = repl
	} else {
		s.Materials = append(s.Materials, repl)
	}
	repl.Name = old.Name
}

// RenameMaterial implements Editor.
func (s *Scene) RenameMaterial(m *Material, name string) {
	if m.Name == name {
		return
	}
	m.Name = s.uniqueMaterialName(name)
}

// RenameObject implements Editor.
func (s *Scene) RenameObject(o *Object, name string) {
	if o.Name == name {
		return
	}
	o.Name = uniqueName(name, func(n string) bool {
		_, taken := s.Object(n)
		return taken
	})
}

// RemoveObject implements Editor. Its mesh and materials stay in the
// scene until PurgeUnused drops them.
func (s *Scene) RemoveObject(o *Object) {
	s.Objects = slices.DeleteFunc(s.Objects, func(x *Object) bool { return x == o })
}

// Select marks exactly the named objects as selected.
func (s *Scene) Select(names ...string) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	for _, o := range s.Objects {
		o.Selected = want[o.Name]
	}
}

// SelectAll marks every object as selected.
func (s *Scene) SelectAll() {
	for _, o := range s.Objects {
		o.Selected = true
	}
}

func (s *Scene) uniqueMaterialName(name string) string {
	return uniqueName(name, func(n string) bool {
		_, taken := s.Material(n)
		return taken
	})
}

// uniqueName returns name, or name.001, name.002, ... for the first form
// not taken.
func uniqueName(name string, taken func(string) bool) string {
	if !taken(name) {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", name, i)
		if !taken(candidate) {
			return candidate
		}
	}
}
