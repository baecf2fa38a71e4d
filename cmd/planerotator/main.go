package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"plane-rotator/internal/config"
	"plane-rotator/internal/plane"
	"plane-rotator/internal/preview"
	"plane-rotator/internal/report"
	"plane-rotator/internal/rotation"
	"plane-rotator/internal/texture"
	"plane-rotator/internal/tokenize"
)

const description = "Calculates the rotation matrix that rotates a plane's normal onto the desired vector (default is {0, 0, 1})."

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// solved is one processed input.
type solved struct {
	source string
	input  []float64
	plane  plane.Plane
	result rotation.Result
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("planerotator", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// CLI flags
	var equation, points string
	fs.StringVar(&equation, "e", "", "Plane equation coefficients (a, b, c, d) in the formula ax + by + cz + d = 0")
	fs.StringVar(&equation, "equation", "", "Same as -e")
	fs.StringVar(&points, "p", "", `Plane points "(x1, y1, z1), (x2, y2, z2), (x3, y3, z3)"`)
	fs.StringVar(&points, "points", "", "Same as -p")
	configFile := fs.String("config", "", "Path to a JSON or YAML config file")
	goal := fs.String("goal", "", `Goal vector "x, y, z" (default: 0, 0, 1)`)
	normalizeGoal := fs.Bool("normalize-goal", false, "Normalize the goal vector before solving")
	antiParallel := fs.Bool("resolve-antiparallel", false, "Use a half turn when the normal points away from the goal")
	proper := fs.Bool("proper", false, "Also require det = +1 and exit 1 if a result is not a proper rotation")
	strict := fs.Bool("strict", false, "Reject non-numeric tokens instead of skipping them")
	verbose := fs.Bool("v", false, "Log intermediate values to stderr")
	jsonOut := fs.Bool("json", false, "Print results as JSON")
	previewOut := fs.String("preview", "", "Write a before/after image (.webp or .png)")
	previewSize := fs.Int("preview-size", 0, "Preview panel size in pixels (default: 384)")
	texturePath := fs.String("texture", "", "Image (.png, .jpg, .tga) painted onto the preview plane")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "%s\n\nUsage: planerotator [flags]\n", description)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if equation == "" && points == "" {
		fs.Usage()
		return 2
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(stderr, "Error loading config: %v\n", err)
			return 1
		}
	}

	flags := config.Flags{
		NormalizeGoal:       *normalizeGoal,
		ResolveAntiParallel: *antiParallel,
		RequireProper:       *proper,
		StrictTokens:        *strict,
		PreviewOutput:       *previewOut,
		PreviewSize:         *previewSize,
		Texture:             *texturePath,
	}
	if *goal != "" {
		g := tokenize.Tokenize(*goal)
		if len(g) != 3 {
			fmt.Fprintf(stderr, "Error: goal has to be in the form \"x, y, z\", got %q\n", *goal)
			return 2
		}
		flags.Goal = g
	}

	// CLI flags override config file
	cfg.Resolve(flags)

	logOut := io.Discard
	if *verbose {
		logOut = stderr
	}
	logger := log.New(logOut, "[planerotator] ", 0)

	solver := rotation.NewSolver(
		rotation.WithGoal(cfg.GoalVec()),
		rotation.WithNormalizedGoal(cfg.NormalizeGoal),
		rotation.WithAntiParallel(cfg.ResolveAntiParallel),
		rotation.WithLogger(logger),
	)

	var results []solved
	status := 0

	if equation != "" {
		k, err := tokenize.Equation(equation, cfg.StrictTokens)
		switch {
		case errors.Is(err, tokenize.ErrTooFewCoefficients):
			fmt.Fprintln(stdout, `Equation has to be in the form "a,b,c,d" in the formula ax + by + cz + d = 0`)
			fmt.Fprintln(stdout, `Example: planerotator -e "1, 0, 0, 0"`)
		case err != nil:
			fmt.Fprintf(stderr, "Error parsing equation: %v\n", err)
			status = 1
		default:
			p := plane.FromCoefficients(k)
			results = append(results, solved{"equation", k[:], p, solver.Solve(p.Homogeneous())})
		}
	}

	if points != "" {
		pts, err := tokenize.Points(points, cfg.StrictTokens)
		switch {
		case errors.Is(err, tokenize.ErrPointCount):
			fmt.Fprintln(stdout, `Points have to be in the form "(x1, y1, z1), (x2, y2, z2), (x3, y3, z3)"`)
			fmt.Fprintln(stdout, `For example: planerotator -p "(0, 0, 0), (1, 1, 0), (-1, 1, 0)"`)
		case err != nil:
			fmt.Fprintf(stderr, "Error parsing points: %v\n", err)
			status = 1
		default:
			p := plane.FromPoints(pts[0], pts[1], pts[2])
			var input []float64
			for _, pt := range pts {
				input = append(input, pt[:]...)
			}
			results = append(results, solved{"points", input, p, solver.Solve(p.Homogeneous())})
		}
	}

	if *jsonOut {
		entries := make([]report.Entry, 0, len(results))
		for _, r := range results {
			entries = append(entries, report.NewEntry(r.source, r.input, r.result))
		}
		if err := report.Write(stdout, entries); err != nil {
			fmt.Fprintf(stderr, "Error writing report: %v\n", err)
			return 1
		}
	} else {
		for _, r := range results {
			printResult(stdout, r, cfg.RequireProper)
		}
	}

	for _, r := range results {
		if r.result.Degenerate != rotation.None {
			logger.Printf("%s: degenerate input (%s)", r.source, r.result.Degenerate)
		}
		if cfg.RequireProper && !rotation.IsProperRotation(r.result.Matrix) {
			status = 1
		}
	}

	if cfg.Preview.Output != "" && len(results) > 0 {
		info := stdout
		if *jsonOut {
			info = stderr
		}
		if err := writePreviews(cfg, results, info, logger); err != nil {
			fmt.Fprintf(stderr, "Error writing preview: %v\n", err)
			return 1
		}
	}

	return status
}

func printResult(w io.Writer, r solved, proper bool) {
	m := r.result.Matrix
	fmt.Fprintf(w, "%s normal: %v\n", r.source, r.result.Normal)
	fmt.Fprintln(w, "rotation matrix:")
	for row := 0; row < 3; row++ {
		fmt.Fprintf(w, "  [% .9f % .9f % .9f]\n", m[row*3], m[row*3+1], m[row*3+2])
	}
	fmt.Fprintf(w, "valid rotation: %v\n", rotation.IsRotationMatrix(m))
	if proper {
		fmt.Fprintf(w, "proper rotation: %v\n", rotation.IsProperRotation(m))
	}
}

func writePreviews(cfg config.Config, results []solved, info io.Writer, logger *log.Logger) error {
	var tex *image.NRGBA
	if cfg.Preview.Texture != "" {
		var err error
		tex, err = texture.Load(cfg.Preview.Texture)
		if err != nil {
			return err
		}
	}

	opts := preview.Options{Size: cfg.Preview.Size, Supersample: cfg.Preview.Supersample}
	for _, r := range results {
		scene := preview.Scene{
			Plane:    r.plane,
			Rotation: r.result.Matrix,
			Goal:     r.result.Goal,
			Texture:  tex,
		}
		img, err := preview.Render(scene, opts)
		if errors.Is(err, preview.ErrDegenerate) {
			logger.Printf("%s: skipping preview: %v", r.source, err)
			continue
		}
		if err != nil {
			return err
		}
		path := previewPath(cfg.Preview.Output, r.source, len(results))
		if err := preview.Save(path, img); err != nil {
			return err
		}
		fmt.Fprintf(info, "Preview: %s\n", path)
	}
	return nil
}

// previewPath returns base unchanged for a single result, otherwise inserts
// the source name before the extension.
func previewPath(base, source string, n int) string {
	if n <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + source + ext
}
