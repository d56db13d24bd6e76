// Package matcolor turns palette hex codes into linear-light material colors.
//
// # Overview
//
// Renderers shade in linear light, while palettes are written as sRGB hex
// codes. matcolor decodes "#rrggbb" strings, linearizes each channel with the
// sRGB transfer function and returns an opaque RGBA ready to be assigned as a
// material's base color.
//
// # Quick Start
//
//	c, err := matcolor.DecodeHex("#FFD43B")
//	if err != nil {
//		return err
//	}
//	r, g, b, a := c.Tuple()
//
// Name based lookup lives in the palette sub-package:
//
//	res, _ := palette.NewResolver(palette.Default())
//	c := res.Resolve("sedlova.001", "sk") // same as "sedlova"
//
// # Architecture
//
//   - matcolor: RGBA, hex parsing, logging
//   - palette: tables, config files, name to color resolution
//   - editor: in-memory scene model and batch material workflows
//   - swatch: PNG preview of a palette
//   - internal/color: sRGB transfer functions and 8-bit lookup table
package matcolor
