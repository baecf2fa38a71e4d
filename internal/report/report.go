// Package report writes solver results as JSON.
package report

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"plane-rotator/internal/mathutil"
	"plane-rotator/internal/rotation"
)

// Number is a float64 that marshals NaN and ±Inf as strings, which plain
// encoding/json rejects.
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// Entry is one solved input.
type Entry struct {
	Source     string       `json:"source"` // "equation" or "points"
	Input      []Number     `json:"input"`
	Normal     [3]Number    `json:"normal"`
	Goal       [3]Number    `json:"goal"`
	Matrix     [3][3]Number `json:"matrix"`
	Rotated    [3]Number    `json:"rotated"`
	Valid      bool         `json:"valid"`
	Proper     bool         `json:"proper"`
	Degenerate string       `json:"degenerate"`
}

// NewEntry fills an Entry from a solver result and runs both validators.
func NewEntry(source string, input []float64, res rotation.Result) Entry {
	e := Entry{
		Source:     source,
		Input:      numbers(input),
		Normal:     vec(res.Normal),
		Goal:       vec(res.Goal),
		Rotated:    vec(res.Rotated),
		Valid:      rotation.IsRotationMatrix(res.Matrix),
		Proper:     rotation.IsProperRotation(res.Matrix),
		Degenerate: res.Degenerate.String(),
	}
	for r := 0; r < 3; r++ {
		e.Matrix[r] = vec(res.Matrix.Row(r))
	}
	return e
}

// Write encodes entries as an indented JSON array.
func Write(w io.Writer, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func vec(v mathutil.Vec3) [3]Number {
	return [3]Number{Number(v[0]), Number(v[1]), Number(v[2])}
}

func numbers(fs []float64) []Number {
	out := make([]Number, len(fs))
	for i, f := range fs {
		out[i] = Number(f)
	}
	return out
}
