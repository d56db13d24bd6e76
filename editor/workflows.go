package editor

import (
	"fmt"
	"strings"

	"github.com/gogpu/matcolor"
)

// VertexColorLayer is the name of a vertex-color layer added by
// EnsureVertexColors.
const VertexColorLayer = "Col"

// Names given to terrain by IsolateTerrain.
const (
	TerrainObject   = "terrain"
	TerrainMaterial = "terrain_ce"
)

// SetupMaterial adds a material named name with the color of a hex literal.
// A malformed hex leaves the scene untouched.
func SetupMaterial(ed Editor, name, hex string) (*Material, error) {
	c, err := matcolor.DecodeHex(hex)
	if err != nil {
		return nil, fmt.Errorf("editor: setup material %q: %w", name, err)
	}
	m := ed.NewMaterial(name)
	m.BaseColor = c
	return m, nil
}

// ClearVertexColors removes every vertex-color layer from the meshes of the
// selected objects and returns how many layers were removed.
func ClearVertexColors(ed Editor) int {
	removed := 0
	for _, obj := range ed.SelectedObjects() {
		if obj.Mesh == nil {
			matcolor.Logger().Warn("editor: object has no mesh", "object", obj.Name)
			continue
		}
		removed += len(obj.Mesh.VertexColors)
		obj.Mesh.VertexColors = nil
	}
	return removed
}

// EnsureVertexColors gives every selected mesh object without a
// vertex-color layer one empty layer named VertexColorLayer. It returns how
// many layers were added; a mesh shared by several objects gets one.
func EnsureVertexColors(ed Editor) int {
	added := 0
	for _, obj := range ed.SelectedObjects() {
		if obj.Kind != KindMesh || obj.Mesh == nil {
			continue
		}
		if len(obj.Mesh.VertexColors) != 0 {
			continue
		}
		obj.Mesh.VertexColors = []string{VertexColorLayer}
		added++
	}
	return added
}

// RemoveEmpty removes the selected objects of kind KindEmpty and returns
// their names.
func RemoveEmpty(ed Editor) []string {
	var removed []string
	for _, obj := range ed.SelectedObjects() {
		if obj.Kind != KindEmpty {
			continue
		}
		ed.RemoveObject(obj)
		removed = append(removed, obj.Name)
	}
	matcolor.Logger().Info("editor: removed empty objects", "count", len(removed))
	return removed
}

// IsolateTerrain finds the selected mesh objects whose name contains
// "terrain" in any case, renames them to TerrainObject and their materials
// to TerrainMaterial, and deselects them so later workflows leave them
// alone. It returns the new object names.
func IsolateTerrain(ed Editor) []string {
	var renamed []string
	for _, obj := range ed.SelectedObjects() {
		if obj.Kind != KindMesh || !strings.Contains(strings.ToLower(obj.Name), TerrainObject) {
			continue
		}
		ed.RenameObject(obj, TerrainObject)
		obj.Selected = false
		for _, m := range obj.Slots {
			if m != nil {
				ed.RenameMaterial(m, TerrainMaterial)
			}
		}
		renamed = append(renamed, obj.Name)
	}
	return renamed
}

// PurgeUnused drops materials and meshes no object refers to.
func PurgeUnused(s *Scene) (materials, meshes int) {
	usedMat := make(map[*Material]bool)
	usedMesh := make(map[*Mesh]bool)
	for _, o := range s.Objects {
		if o.Mesh != nil {
			usedMesh[o.Mesh] = true
		}
		for _, m := range o.Slots {
			if m != nil {
				usedMat[m] = true
			}
		}
	}

	keptMat := s.Materials[:0]
	for _, m := range s.Materials {
		if usedMat[m] {
			keptMat = append(keptMat, m)
		} else {
			materials++
		}
	}
	clear(s.Materials[len(keptMat):])
	s.Materials = keptMat

	keptMesh := s.Meshes[:0]
	for _, m := range s.Meshes {
		if usedMesh[m] {
			keptMesh = append(keptMesh, m)
		} else {
			meshes++
		}
	}
	clear(s.Meshes[len(keptMesh):])
	s.Meshes = keptMesh

	matcolor.Logger().Info("editor: purged unused data", "materials", materials, "meshes", meshes)
	return materials, meshes
}

// Reset deletes every object, material and mesh of s and reports how many
// of each were removed.
func Reset(s *Scene) (objects, materials, meshes int) {
	objects, materials, meshes = len(s.Objects), len(s.Materials), len(s.Meshes)
	s.Objects, s.Materials, s.Meshes = nil, nil, nil
	matcolor.Logger().Info("editor: scene reset",
		"objects", objects, "materials", materials, "meshes", meshes)
	return objects, materials, meshes
}
