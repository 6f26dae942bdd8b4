package config

import "time"

const (
	// Serial link
	DefaultPort     = "/dev/ttyUSB0"
	DefaultBaudRate = 9600
	ReadTimeout     = time.Millisecond // Poll timeout, keeps reads off the frame budget
	ReadChunk       = 512              // Bytes read per frame
	MaxLineLength   = 256              // Pending bytes without a newline before the line is dropped

	// Radar display
	DefaultWidth    = 900
	DefaultHeight   = 700
	DefaultMaxRange = 400 // Maximum sensed range in centimeters
	MinWidth        = 320
	MinHeight       = 260
	TargetFPS       = 60
	RingCount       = 4  // Number of range rings
	AngleStepDeg    = 15 // Radial grid spacing
	MajorAngleDeg   = 30 // Emphasized and labeled radial lines
	SweepMaxDeg     = 180

	// Detection history
	HistorySize = 180
	TrailSize   = 20
	FadeWindow  = 3 * time.Second

	// Distance bands (centimeters)
	NearBand = 100
	MidBand  = 200

	// Particles
	ParticleRange    = 150 // Samples closer than this spawn particles
	ParticlesPerHit  = 3
	ParticleLife     = 255
	ParticleDecay    = 8
	ParticleMaxSpeed = 0.5 // Per axis, units per frame

	// Demo mode
	DemoStepsPerSec = 60 // Servo steps emitted per second
	DemoStepDeg     = 1

	// Display modes
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"

	// App
	AppName    = "SERIAL-RADAR"
	AppVersion = "1.0"
	EnvPrefix  = "RADAR"
)
