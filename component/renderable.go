package component

// Renderable describes how an entity is drawn. The record carries only
// handles and flags; the render surface owns the actual drawing.
type Renderable struct {
	Glyph rune
	Color uint32 // Packed 0xRRGGBB

	Visible     bool
	LODDistance float64
	LODLevel    uint8
}
