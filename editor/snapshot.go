package editor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/matcolor"
)

// Snapshot errors.
var (
	// ErrUnknownReference is returned when a snapshot object names a
	// material or mesh the snapshot does not define.
	ErrUnknownReference = errors.New("editor: unknown reference")
	// ErrDuplicateName is returned when two materials, meshes or objects
	// of a snapshot share a name.
	ErrDuplicateName = errors.New("editor: duplicate name")
	// ErrAmbiguousColor is returned when a snapshot material sets both
	// base_color and hex.
	ErrAmbiguousColor = errors.New("editor: both base_color and hex set")
)

// snapshot is the JSON form of a Scene. Objects refer to materials and
// meshes by name; an empty slot name is an empty slot.
type snapshot struct {
	Materials []materialJSON `json:"materials"`
	Meshes    []meshJSON     `json:"meshes,omitempty"`
	Objects   []objectJSON   `json:"objects"`
}

type materialJSON struct {
	Name string `json:"name"`
	// Color is linear RGBA. Hex, when set instead, is decoded from sRGB.
	Color     *[4]float64 `json:"base_color,omitempty"`
	Hex       string      `json:"hex,omitempty"`
	Roughness *float64    `json:"roughness,omitempty"`
}

type meshJSON struct {
	Name         string   `json:"name"`
	VertexColors []string `json:"vertex_colors,omitempty"`
}

type objectJSON struct {
	Name     string   `json:"name"`
	Type     Kind     `json:"type,omitempty"`
	Selected bool     `json:"selected,omitempty"`
	Mesh     string   `json:"mesh,omitempty"`
	Slots    []string `json:"slots,omitempty"`
}

// ReadScene decodes a JSON scene snapshot. Names must be unique per kind
// of entity. A material without roughness gets DefaultRoughness; an object
// without type is a mesh object if it has a mesh or slots, an empty
// otherwise.
func ReadScene(r io.Reader) (*Scene, error) {
	var snap snapshot
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return nil, fmt.Errorf("editor: decode scene: %w", err)
	}

	s := &Scene{}
	materials := make(map[string]*Material, len(snap.Materials))
	for _, mj := range snap.Materials {
		if _, dup := materials[mj.Name]; dup {
			return nil, fmt.Errorf("%w: material %q", ErrDuplicateName, mj.Name)
		}
		m := &Material{Name: mj.Name, BaseColor: matcolor.White, Roughness: DefaultRoughness}
		switch {
		case mj.Color != nil && mj.Hex != "":
			return nil, fmt.Errorf("%w: material %q", ErrAmbiguousColor, mj.Name)
		case mj.Color != nil:
			m.BaseColor = matcolor.RGBA{R: mj.Color[0], G: mj.Color[1], B: mj.Color[2], A: mj.Color[3]}
		case mj.Hex != "":
			c, err := matcolor.DecodeHex(mj.Hex)
			if err != nil {
				return nil, fmt.Errorf("editor: material %q: %w", mj.Name, err)
			}
			m.BaseColor = c
		}
		if mj.Roughness != nil {
			m.Roughness = *mj.Roughness
		}
		materials[m.Name] = m
		s.Materials = append(s.Materials, m)
	}
	meshes := make(map[string]*Mesh, len(snap.Meshes))
	for _, mj := range snap.Meshes {
		if _, dup := meshes[mj.Name]; dup {
			return nil, fmt.Errorf("%w: mesh %q", ErrDuplicateName, mj.Name)
		}
		m := &Mesh{Name: mj.Name, VertexColors: mj.VertexColors}
		meshes[m.Name] = m
		s.Meshes = append(s.Meshes, m)
	}
	objects := make(map[string]bool, len(snap.Objects))
	for _, oj := range snap.Objects {
		if objects[oj.Name] {
			return nil, fmt.Errorf("%w: object %q", ErrDuplicateName, oj.Name)
		}
		objects[oj.Name] = true
		o := &Object{Name: oj.Name, Kind: oj.Type, Selected: oj.Selected}
		if o.Kind == "" {
			o.Kind = KindEmpty
			if oj.Mesh != "" || len(oj.Slots) != 0 {
				o.Kind = KindMesh
			}
		}
		if oj.Mesh != "" {
			m, ok := meshes[oj.Mesh]
			if !ok {
				return nil, fmt.Errorf("%w: object %q mesh %q", ErrUnknownReference, oj.Name, oj.Mesh)
			}
			o.Mesh = m
		}
		for _, name := range oj.Slots {
			if name == "" {
				o.Slots = append(o.Slots, nil)
				continue
			}
			m, ok := materials[name]
			if !ok {
				return nil, fmt.Errorf("%w: object %q material %q", ErrUnknownReference, oj.Name, name)
			}
			o.Slots = append(o.Slots, m)
		}
		s.Objects = append(s.Objects, o)
	}
	return s, nil
}

// WriteScene encodes s as an indented JSON snapshot. Material colors are
// written as linear RGBA.
func WriteScene(w io.Writer, s *Scene) error {
	var snap snapshot
	for _, m := range s.Materials {
		c := [4]float64{m.BaseColor.R, m.BaseColor.G, m.BaseColor.B, m.BaseColor.A}
		r := m.Roughness
		snap.Materials = append(snap.Materials, materialJSON{Name: m.Name, Color: &c, Roughness: &r})
	}
	for _, m := range s.Meshes {
		snap.Meshes = append(snap.Meshes, meshJSON{Name: m.Name, VertexColors: m.VertexColors})
	}
	for _, o := range s.Objects {
		oj := objectJSON{Name: o.Name, Type: o.Kind, Selected: o.Selected}
		if o.Mesh != nil {
			oj.Mesh = o.Mesh.Name
		}
		for _, m := range o.Slots {
			name := ""
			if m != nil {
				name = m.Name
			}
			oj.Slots = append(oj.Slots, name)
		}
		snap.Objects = append(snap.Objects, oj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	return enc.Encode(snap)
}

// LoadScene reads a snapshot file.
func LoadScene(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadScene(f)
}

// SaveScene writes a snapshot file.
func SaveScene(path string, s *Scene) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteScene(f, s); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
