// Package tokenize turns comma-separated numeric strings into values.
package tokenize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"plane-rotator/internal/mathutil"
)

var (
	ErrInvalidToken       = errors.New("invalid numeric token")
	ErrTooFewCoefficients = errors.New("equation needs at least 4 coefficients")
	ErrPointCount         = errors.New("points need exactly 9 values")
)

// Token is one comma-separated field after spaces are removed.
type Token struct {
	Text  string
	Value float64
	Err   error
}

// Scan splits s on commas after removing spaces and parses every field.
// Failed fields keep their text and carry the parse error.
func Scan(s string) []Token {
	fields := strings.Split(strings.ReplaceAll(s, " ", ""), ",")
	tokens := make([]Token, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		tokens = append(tokens, Token{Text: f, Value: v, Err: err})
	}
	return tokens
}

// Values collects parsed values. Without strict, failed tokens are skipped;
// with strict, the first one is reported.
func Values(tokens []Token, strict bool) ([]float64, error) {
	values := make([]float64, 0, len(tokens))
	for i, t := range tokens {
		if t.Err != nil {
			if strict {
				return nil, fmt.Errorf("tokenize: field %d %q: %w", i+1, t.Text, ErrInvalidToken)
			}
			continue
		}
		values = append(values, t.Value)
	}
	return values, nil
}

// Tokenize is the lenient form of Scan + Values.
func Tokenize(s string) []float64 {
	values, _ := Values(Scan(s), false)
	return values
}

// Equation parses "a, b, c, d". Extra values are ignored.
func Equation(s string, strict bool) ([4]float64, error) {
	var k [4]float64
	values, err := Values(Scan(s), strict)
	if err != nil {
		return k, err
	}
	if len(values) < 4 {
		return k, fmt.Errorf("tokenize: got %d values: %w", len(values), ErrTooFewCoefficients)
	}
	copy(k[:], values)
	return k, nil
}

// Points parses "(x1, y1, z1), (x2, y2, z2), (x3, y3, z3)".
func Points(s string, strict bool) ([3]mathutil.Vec3, error) {
	var pts [3]mathutil.Vec3
	s = strings.NewReplacer("(", "", ")", "").Replace(s)
	values, err := Values(Scan(s), strict)
	if err != nil {
		return pts, err
	}
	if len(values) != 9 {
		return pts, fmt.Errorf("tokenize: got %d values: %w", len(values), ErrPointCount)
	}
	for i := range pts {
		pts[i] = mathutil.Vec3{values[i*3], values[i*3+1], values[i*3+2]}
	}
	return pts, nil
}
