package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/san-kum/platterlab/internal/session"
)

type runData struct {
	Preset        string             `json:"preset,omitempty"`
	Dt            float64            `json:"dt"`
	MediaDuration float64            `json:"media_duration"`
	Frames        int                `json:"frames"`
	Times         []float64          `json:"times"`
	Yaw           []float64          `json:"yaw_deg"`
	Velocity      []float64          `json:"platter_vel"`
	Clock         []float64          `json:"media_clock"`
	Metrics       map[string]float64 `json:"metrics"`
}

// WriteJSON dumps a recorded run with its traces and metrics.
func WriteJSON(path, preset string, dt, mediaDuration float64, res *session.Result) error {
	data := runData{
		Preset:        preset,
		Dt:            dt,
		MediaDuration: mediaDuration,
		Frames:        res.Frames,
		Times:         res.Times,
		Yaw:           res.Yaw,
		Velocity:      res.Vel,
		Clock:         res.Clock,
		Metrics:       res.Metrics,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV dumps the per-frame traces as rows of t, yaw, vel, clock.
func WriteCSV(path string, res *session.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"t", "yaw_deg", "platter_vel", "media_clock"}); err != nil {
		return err
	}
	for i := range res.Times {
		row := []string{
			strconv.FormatFloat(res.Times[i], 'f', 6, 64),
			strconv.FormatFloat(res.Yaw[i], 'f', 6, 64),
			strconv.FormatFloat(res.Vel[i], 'f', 6, 64),
			strconv.FormatFloat(res.Clock[i], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
