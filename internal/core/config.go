package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to the viewport and for deterministic simulation.
type RuntimeConfig struct {
	ViewportW int   // Viewport width in world units (pixels)
	ViewportH int   // Viewport height in world units (pixels)
	TickRate  int   // Frames per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewportW: 960,
		ViewportH: 528,
		TickRate:  60,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// Viewport returns the viewport as a Size.
func (c RuntimeConfig) Viewport() Size {
	return Size{W: float64(c.ViewportW), H: float64(c.ViewportH)}
}
