package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Viewports at or below this width use the compact layout.
	CompactBreakpoint = 768

	// Starfield parameters
	ParticleCount = 150
	MaxSpeed      = 0.5
	MinRadius     = 0.5
	RadiusSpread  = 2.0
	HaloThreshold = 1.5
	HaloScale     = 3.0
	HaloAlpha     = 0.1
	TimeStep      = 0.01
	TwinkleRate   = 2.0
	MinOpacity    = 0.2

	// Glows sit at fixed fractions of the viewport.
	GlowRadiusFraction = 0.25
	GlowAlpha          = 0.1
	GlowRings          = 24

	// Mesh parameters
	MeshNodeCount   = 80
	MeshMaxDistance = 140
	MeshLineWidth   = 1.0
	MeshNodeRadius  = 1.6

	// Navigation chime
	ChimeFrequency = 880.0
	ChimeDecay     = 9.0
	ChimeVolume    = -1.5
)

// Palette holds the particle colors in #rrggbb form.
var Palette = []string{"#ffffff", "#4a90e2", "#667eea", "#764ba2"}

// Background is the base color the surface is cleared to every tick.
const Background = "#0f1419"

// Glows are the two stationary nebula blobs, as viewport fractions.
var Glows = []struct {
	X, Y  float64
	Color string
}{
	{X: 0.25, Y: 0.25, Color: "#4a90e2"},
	{X: 0.75, Y: 0.75, Color: "#667eea"},
}
