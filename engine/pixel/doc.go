// Package pixel holds the 8-bit RGBA pixel and grid types the variant
// generator works on, plus ARGB packing and HSL conversion.
//
// A Grid is compatible with Go's [image.Image] through [FromImage] and
// [Grid.Image], so decoded textures of any format can be recoloured and
// re-encoded without touching the core transforms.
package pixel
