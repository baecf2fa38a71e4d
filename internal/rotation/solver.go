package rotation

import (
	"fmt"
	"log"

	"plane-rotator/internal/mathutil"
)

// Degeneracy classifies inputs the closed form cannot handle.
type Degeneracy int

const (
	None Degeneracy = iota
	ZeroNormal
	AntiParallel
)

func (d Degeneracy) String() string {
	switch d {
	case None:
		return "none"
	case ZeroNormal:
		return "zero-normal"
	case AntiParallel:
		return "anti-parallel"
	}
	return fmt.Sprintf("Degeneracy(%d)", int(d))
}

// Classify inspects the unnormalized normal against goal.
// Anti-parallel means the cross product vanishes exactly while the normal
// points away from goal.
func Classify(normal, goal mathutil.Vec3) Degeneracy {
	if normal.Len() == 0 || !normal.IsFinite() {
		return ZeroNormal
	}
	n := normal.Normalize()
	if n.Cross(goal).Len() == 0 && goal.Dot(n) < 0 {
		return AntiParallel
	}
	return None
}

// Stage names a point in Solve where an Observer is notified.
type Stage int

const (
	StageNormal Stage = iota
	StageMatrix
	StageRotated
)

// Observer receives intermediate values from Solve. It must not retain v
// beyond the call.
type Observer interface {
	Observe(stage Stage, v any)
}

// LogObserver prints each stage to a *log.Logger.
type LogObserver struct {
	Logger *log.Logger
}

func (o LogObserver) Observe(stage Stage, v any) {
	if o.Logger == nil {
		return
	}
	switch stage {
	case StageNormal:
		o.Logger.Printf("Parsed normal vector as: %v", v)
	case StageMatrix:
		if m, ok := v.(mathutil.Mat3); ok {
			o.Logger.Printf("rotation_matrix = [%v, %v, %v]", m.Row(0), m.Row(1), m.Row(2))
			return
		}
		o.Logger.Printf("rotation_matrix = %v", v)
	case StageRotated:
		o.Logger.Printf("rotated = %v", v)
	}
}

// Result is the outcome of one Solve call.
type Result struct {
	Normal     mathutil.Vec3 // normalized input normal
	Goal       mathutil.Vec3 // goal actually used
	Matrix     mathutil.Mat3
	Rotated    mathutil.Vec3 // Matrix × Normal
	Degenerate Degeneracy
}

// Solver wraps Compute with a configurable goal, optional handling of the
// anti-parallel case and an observer for intermediate values.
type Solver struct {
	Goal                mathutil.Vec3
	NormalizeGoal       bool
	ResolveAntiParallel bool
	Observer            Observer
}

type Option func(*Solver)

// WithGoal sets the target direction.
func WithGoal(g mathutil.Vec3) Option {
	return func(s *Solver) { s.Goal = g }
}

// WithNormalizedGoal normalizes the goal before solving.
func WithNormalizedGoal(on bool) Option {
	return func(s *Solver) { s.NormalizeGoal = on }
}

// WithAntiParallel makes a normal opposite to the goal produce a half turn
// about a perpendicular axis instead of a non-finite matrix.
func WithAntiParallel(on bool) Option {
	return func(s *Solver) { s.ResolveAntiParallel = on }
}

// WithLogger reports intermediate values to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(s *Solver) {
		if l != nil {
			s.Observer = LogObserver{Logger: l}
		}
	}
}

// WithObserver installs a custom observer.
func WithObserver(o Observer) Option {
	return func(s *Solver) { s.Observer = o }
}

func NewSolver(opts ...Option) *Solver {
	s := &Solver{Goal: DefaultGoal}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Solver) observe(stage Stage, v any) {
	if s.Observer != nil {
		s.Observer.Observe(stage, v)
	}
}

// Solve computes the rotation for normal and reports the intermediate values.
func (s *Solver) Solve(normal mathutil.Vec4) Result {
	goal := s.Goal
	if s.NormalizeGoal {
		goal = goal.Normalize()
	}

	raw := normal.XYZ()
	n := raw.Normalize()
	s.observe(StageNormal, n)

	res := Result{
		Normal:     n,
		Goal:       goal,
		Degenerate: Classify(raw, goal),
	}

	switch {
	case s.ResolveAntiParallel && res.Degenerate == None && n != goal && n.Cross(goal).Len() == 0:
		// Parallel but not bit-equal after normalization.
		res.Matrix = mathutil.Mat3Identity()
	case s.ResolveAntiParallel && res.Degenerate == AntiParallel:
		axis := mathutil.AxisLeastAligned(n).Cross(n).Normalize()
		res.Matrix = mathutil.HalfTurn(axis)
	default:
		res.Matrix = rodrigues(n, goal)
	}
	s.observe(StageMatrix, res.Matrix)

	res.Rotated = Rotate(n, res.Matrix)
	s.observe(StageRotated, res.Rotated)
	return res
}
