package mechanism

// Params collects the mechanism tunables. Angles are degrees; rates
// marked per-second are scaled by the frame delta, fixed factors are
// applied once per frame.
type Params struct {
	// Tonearm yaw geometry. MinYaw < PlayThreshold < HomeYaw <= MaxYaw.
	MinYaw        float64
	MaxYaw        float64
	HomeYaw       float64
	PlayThreshold float64

	// SnapBand is the sweet spot just outside the playable band: a
	// release there snaps the arm onto the threshold.
	SnapBand float64

	ReturnRate      float64 // per second, arm easing home
	HomeEpsilon     float64
	DragSensitivity float64 // degrees per pixel at zoom 1

	// Needle pitch, degrees relative to rest.
	RestPitch    float64
	PitchDrop    float64
	HoverLift    float64
	PitchLerp    float64 // fixed factor per frame
	PitchEpsilon float64

	// Platter spin.
	RPMSlow      float64
	RPMFast      float64
	RateSlow     float64
	RateFast     float64
	SpinResponse float64 // per second, velocity low-pass
	PulleyRatio  float64

	// Button/slide visuals.
	PressOffset   float64
	PressDuration float64
	SlideTravel   float64

	// Cosmetic wobble while media advances.
	WobbleFreq     float64
	WobbleYawAmp   float64
	WobblePitchAmp float64
}

func DefaultParams() Params {
	return Params{
		MinYaw:          -33.33,
		MaxYaw:          8,
		HomeYaw:         0,
		PlayThreshold:   -15,
		SnapBand:        2.5,
		ReturnRate:      4.0,
		HomeEpsilon:     0.1,
		DragSensitivity: 0.14,
		RestPitch:       0,
		PitchDrop:       6,
		HoverLift:       3,
		PitchLerp:       0.15,
		PitchEpsilon:    0.25,
		RPMSlow:         100.0 / 3,
		RPMFast:         45,
		RateSlow:        1.0,
		RateFast:        1.5,
		SpinResponse:    3.0,
		PulleyRatio:     3.2,
		PressOffset:     0.012,
		PressDuration:   0.12,
		SlideTravel:     0.35,
		WobbleFreq:      18,
		WobbleYawAmp:    0.18,
		WobblePitchAmp:  0.1,
	}
}
