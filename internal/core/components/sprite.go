package components

// Color is a plain RGBA tint, grounded on the teacher's ecs.Color.
type Color struct {
	R, G, B, A uint8
}

// Sprite is the 2D rendering descriptor the render plugin's draw system
// reads every Render stage. TextureName keys into the asset library's
// singleflight-backed cache rather than holding a loaded image directly, so
// sprites stay plain data and safe to copy.
type Sprite struct {
	TextureName string
	Tint        Color
	ZOrder      int
	Visible     bool
	FlipX       bool
	FlipY       bool
}
