package editor

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/matcolor"
)

func TestSetupMaterial(t *testing.T) {
	s := &Scene{}
	m, err := SetupMaterial(s, "python", "#FFD43B")
	if err != nil {
		t.Fatal(err)
	}
	if want := matcolor.MustDecodeHex("#FFD43B"); m.BaseColor != want {
		t.Errorf("BaseColor = %v, want %v", m.BaseColor, want)
	}
	if got, ok := s.Material("python"); !ok || got != m {
		t.Error("material not added to scene")
	}
}

func TestSetupMaterialMalformed(t *testing.T) {
	s := &Scene{}
	_, err := SetupMaterial(s, "bad", "#zzzzzz")
	if !errors.Is(err, matcolor.ErrMalformedHex) {
		t.Errorf("err = %v, want ErrMalformedHex", err)
	}
	if len(s.Materials) != 0 {
		t.Errorf("malformed hex added %d materials", len(s.Materials))
	}
}

func TestClearVertexColors(t *testing.T) {
	shared := &Mesh{Name: "shared", VertexColors: []string{"Col", "Attribute"}}
	other := &Mesh{Name: "other", VertexColors: []string{"Col"}}
	s := &Scene{
		Meshes: []*Mesh{shared, other},
		Objects: []*Object{
			{Name: "a", Selected: true, Mesh: shared},
			{Name: "b", Selected: true, Mesh: shared},
			{Name: "empty", Selected: true},
			{Name: "c", Mesh: other},
		},
	}
	if n := ClearVertexColors(s); n != 2 {
		t.Errorf("ClearVertexColors() = %d, want 2", n)
	}
	if len(shared.VertexColors) != 0 {
		t.Errorf("shared mesh still has %v", shared.VertexColors)
	}
	if len(other.VertexColors) != 1 {
		t.Error("unselected object's mesh was cleared")
	}
}

func TestPurgeUnused(t *testing.T) {
	used := &Material{Name: "used"}
	orphan := &Material{Name: "orphan"}
	mesh := &Mesh{Name: "mesh"}
	lost := &Mesh{Name: "lost"}
	s := &Scene{
		Materials: []*Material{orphan, used},
		Meshes:    []*Mesh{lost, mesh},
		Objects:   []*Object{{Name: "o", Mesh: mesh, Slots: []*Material{nil, used}}},
	}
	mats, meshes := PurgeUnused(s)
	if mats != 1 || meshes != 1 {
		t.Errorf("PurgeUnused() = %d, %d; want 1, 1", mats, meshes)
	}
	if len(s.Materials) != 1 || s.Materials[0] != used {
		t.Errorf("Materials = %v", s.Materials)
	}
	if len(s.Meshes) != 1 || s.Meshes[0] != mesh {
		t.Errorf("Meshes = %v", s.Meshes)
	}
}

func TestEnsureVertexColors(t *testing.T) {
	bare := &Mesh{Name: "bare"}
	painted := &Mesh{Name: "painted", VertexColors: []string{"Attribute"}}
	shared := &Mesh{Name: "shared"}
	unselected := &Mesh{Name: "unselected"}
	s := &Scene{
		Meshes: []*Mesh{bare, painted, shared, unselected},
		Objects: []*Object{
			{Name: "a", Kind: KindMesh, Selected: true, Mesh: bare},
			{Name: "b", Kind: KindMesh, Selected: true, Mesh: painted},
			{Name: "c", Kind: KindMesh, Selected: true, Mesh: shared},
			{Name: "d", Kind: KindMesh, Selected: true, Mesh: shared},
			{Name: "e", Kind: KindEmpty, Selected: true},
			{Name: "f", Kind: KindMesh, Mesh: unselected},
		},
	}
	if n := EnsureVertexColors(s); n != 2 {
		t.Errorf("EnsureVertexColors() = %d, want 2", n)
	}

	tests := []struct {
		mesh *Mesh
		want []string
	}{
		{bare, []string{VertexColorLayer}},
		{painted, []string{"Attribute"}},
		{shared, []string{VertexColorLayer}},
		{unselected, nil},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, tt.mesh.VertexColors); diff != "" {
			t.Errorf("%s layers (-want +got):\n%s", tt.mesh.Name, diff)
		}
	}
}

func TestRemoveEmpty(t *testing.T) {
	s := &Scene{Objects: []*Object{
		{Name: "origin", Kind: KindEmpty, Selected: true},
		{Name: "dum", Kind: KindMesh, Selected: true},
		{Name: "anchor", Kind: KindEmpty},
		{Name: "camera", Kind: "CAMERA", Selected: true},
		{Name: "group", Kind: KindEmpty, Selected: true},
	}}
	removed := RemoveEmpty(s)
	if diff := cmp.Diff([]string{"origin", "group"}, removed); diff != "" {
		t.Errorf("removed (-want +got):\n%s", diff)
	}
	var left []string
	for _, o := range s.Objects {
		left = append(left, o.Name)
	}
	if diff := cmp.Diff([]string{"dum", "anchor", "camera"}, left); diff != "" {
		t.Errorf("objects left (-want +got):\n%s", diff)
	}
}

func TestIsolateTerrain(t *testing.T) {
	s := &Scene{}
	ground := s.NewMaterial("CityEngineTerrainMaterial")
	roof := s.NewMaterial("sedlova")
	s.Objects = []*Object{
		{Name: "Terrain_1", Kind: KindMesh, Selected: true, Slots: []*Material{ground, nil}},
		{Name: "dum", Kind: KindMesh, Selected: true, Slots: []*Material{roof}},
		{Name: "terrain_marker", Kind: KindEmpty, Selected: true},
		{Name: "old_terrain", Kind: KindMesh},
	}

	renamed := IsolateTerrain(s)
	if diff := cmp.Diff([]string{TerrainObject}, renamed); diff != "" {
		t.Errorf("renamed (-want +got):\n%s", diff)
	}
	if o := s.Objects[0]; o.Name != TerrainObject || o.Selected {
		t.Errorf("terrain object = %q selected=%v", o.Name, o.Selected)
	}
	if ground.Name != TerrainMaterial {
		t.Errorf("terrain material named %q, want %q", ground.Name, TerrainMaterial)
	}
	if roof.Name != "sedlova" || !s.Objects[1].Selected {
		t.Error("building was touched")
	}
	if s.Objects[3].Name != "old_terrain" {
		t.Error("unselected terrain was renamed")
	}
	sel := s.SelectedObjects()
	if len(sel) != 2 || sel[0].Name != "dum" {
		t.Errorf("selection after isolation = %v", sel)
	}
}

func TestReset(t *testing.T) {
	s := buildingScene()
	s.Meshes = []*Mesh{{Name: "m"}}
	objects, materials, meshes := Reset(s)
	if objects != 3 || materials != 4 || meshes != 1 {
		t.Errorf("Reset() = %d, %d, %d; want 3, 4, 1", objects, materials, meshes)
	}
	if len(s.Objects)+len(s.Materials)+len(s.Meshes) != 0 {
		t.Errorf("scene not empty: %+v", s)
	}
}
