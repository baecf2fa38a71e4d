package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"plane-rotator/internal/mathutil"
	"plane-rotator/internal/rotation"
)

func TestWrite_Valid(t *testing.T) {
	res := rotation.NewSolver().Solve(mathutil.Vec4{0, 1, 0, 0})
	var buf bytes.Buffer
	if err := Write(&buf, []Entry{NewEntry("equation", []float64{0, 1, 0, 0}, res)}); err != nil {
		t.Fatal(err)
	}

	var got []struct {
		Source     string        `json:"source"`
		Matrix     [3][3]float64 `json:"matrix"`
		Valid      bool          `json:"valid"`
		Proper     bool          `json:"proper"`
		Degenerate string        `json:"degenerate"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 1 {
		t.Fatalf("got %d entries", len(got))
	}
	e := got[0]
	if e.Source != "equation" || !e.Valid || !e.Proper || e.Degenerate != "none" {
		t.Fatalf("entry = %+v", e)
	}
	want := [3][3]float64{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}}
	if e.Matrix != want {
		t.Fatalf("matrix = %v, want %v", e.Matrix, want)
	}
}

func TestWrite_NonFinite(t *testing.T) {
	res := rotation.NewSolver().Solve(mathutil.Vec4{0, 0, -1, 0})
	var buf bytes.Buffer
	if err := Write(&buf, []Entry{NewEntry("equation", []float64{0, 0, -1, 0}, res)}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"NaN"`) {
		t.Fatalf("expected NaN strings in output:\n%s", out)
	}
	if !strings.Contains(out, `"anti-parallel"`) {
		t.Fatalf("degeneracy missing:\n%s", out)
	}
	var doc []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("empty report = %q", buf.String())
	}
}
