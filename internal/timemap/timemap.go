// Package timemap converts tonearm yaw to media time and back.
// Yaw decreases from the play threshold toward minYaw as the record
// plays out, so the map is linear in (yaw - threshold).
package timemap

// Progress maps a yaw angle into normalized playback progress [0,1].
// Returns 0 when the playable band is degenerate.
func Progress(yaw, playThreshold, minYaw float64) float64 {
	span := minYaw - playThreshold
	if span == 0 {
		return 0
	}
	p := (yaw - playThreshold) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Seconds maps a yaw angle to absolute media seconds.
func Seconds(yaw, playThreshold, minYaw, duration float64) float64 {
	return Progress(yaw, playThreshold, minYaw) * duration
}

// Yaw maps media seconds back to the tonearm yaw that would scrub
// there. Seconds outside [0,duration] clamp to the band edges.
func Yaw(seconds, playThreshold, minYaw, duration float64) float64 {
	if duration <= 0 {
		return playThreshold
	}
	p := seconds / duration
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return playThreshold + p*(minYaw-playThreshold)
}
