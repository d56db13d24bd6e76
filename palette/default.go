package palette

// Category keys of the built-in palette.
const (
	CategoryRoof      = "sk" // roof type
	CategoryComponent = "co" // building component
	CategorySurface   = "pk" // surface orientation
	CategoryTerrain   = "t"  // terrain
)

// builtin is the CityEngine building palette. Roof types use ColorBrewer
// Set2; the other categories reuse a few Set2 hues plus greys. Values are
// kept in the case they were authored in.
var builtin = Table{
	CategoryRoof: {
		"sedlova":    "#66c2a5",
		"mansardova": "#fc8d62",
		"plocha":     "#8da0cb",
		"pultova":    "#e78ac3",
		"stanova":    "#a6d854",
		"valbova":    "#ffd92f",
		"jina":       "#e5c494",
	},
	CategoryComponent: {
		"komin":               "#FC8D62",
		"vez":                 "#A6D854",
		"stresni_nastavba":    "#8DA0CB",
		"vytahy_klimatizace":  "#E78AC3",
		"hlavni_cast_objektu": "#E1E1E1",
	},
	CategorySurface: {
		"svisla_stena":      "#FFFFFF",
		"vodorovna_strecha": "#B2B2B2",
		"sikma_strecha":     "#DE6034",
		"zakladova_deska":   "#FFFFFF",
	},
	CategoryTerrain: {
		"CityEngineTerrainMaterial": "#DDDDDD",
	},
}

// Default returns a copy of the built-in palette. The copy may be edited
// freely, e.g. to swap colors before building a Resolver.
func Default() Table {
	return builtin.Clone()
}
