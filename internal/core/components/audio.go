package components

// Audio describes a looping or one-shot sound an entity emits, consumed by
// the audio plugin's playback system. ClipName keys into the audio
// library the same way Sprite.TextureName keys into the texture library.
type Audio struct {
	ClipName string
	Volume   float64
	Loop     bool
	Playing  bool
}
