package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/platterlab/internal/session"
	"github.com/san-kum/platterlab/internal/viz"
)

func sampleResult() *session.Result {
	return &session.Result{
		Frames:  3,
		Times:   []float64{0, 0.016, 0.033},
		Yaw:     []float64{0, -5, -16},
		Vel:     []float64{0, 1.2, 2.4},
		Clock:   []float64{0, 0, 10},
		Metrics: map[string]float64{"spin_settle": 1.5},
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	if err := WriteJSON(path, "standard", 1.0/60, 180, sampleResult()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var data runData
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if data.Frames != 3 || data.Preset != "standard" {
		t.Errorf("bad header: %+v", data)
	}
	if data.Metrics["spin_settle"] != 1.5 {
		t.Errorf("metrics lost: %v", data.Metrics)
	}
}

func TestWriteCSVRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.csv")
	if err := WriteCSV(path, sampleResult()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 4 {
		t.Fatalf("want header + 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "yaw_deg" {
		t.Errorf("bad header row: %v", rows[0])
	}
}

func TestCanvasSVGHasDots(t *testing.T) {
	c := viz.NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)

	svg := CanvasSVG(c, 4)
	if !strings.Contains(svg, "<circle") {
		t.Error("expected at least one dot")
	}
	if !strings.HasPrefix(svg, `<?xml`) {
		t.Error("missing xml header")
	}
}

func TestTraceSVG(t *testing.T) {
	if TraceSVG([]float64{1}, 100, 40, "#fff") != "" {
		t.Error("single point should produce nothing")
	}
	svg := TraceSVG([]float64{0, 1, 0.5, 2}, 100, 40, "#fff")
	if !strings.Contains(svg, "polyline") {
		t.Error("missing polyline")
	}
	// flat traces must not divide by zero
	if !strings.Contains(TraceSVG([]float64{3, 3, 3}, 100, 40, "#fff"), "polyline") {
		t.Error("flat trace should still render")
	}
}
