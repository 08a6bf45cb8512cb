// Command gminfo prints the matrices produced by the gmath transform and
// projection generators.
//
// Usage:
//
//	gminfo [flags] [transform-name ...]
//
// Without arguments it prints every known transform.
//
// Examples:
//
//	gminfo perspective
//	gminfo -fov 90 -aspect 1.5 perspective ortho
//	gminfo -angle 30 -axis 1,1,0 rotate
//	gminfo -flat -eye 0,0,5 lookat
//	gminfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-gmath/internal/kernel"
	"github.com/cwbudde/algo-gmath/mat"
	"github.com/cwbudde/algo-gmath/scalar"
	"github.com/cwbudde/algo-gmath/vec"
)

// params collects the generator arguments from the command line.
type params struct {
	v                        vec.Vec3
	angleDeg                 scalar.Float
	axis                     vec.Vec3
	fovDeg, aspect           scalar.Float
	near, far                scalar.Float
	left, right, bottom, top scalar.Float
	eye, center, up          vec.Vec3
}

// matrix is a generated matrix in flat column-major order.
type matrix struct {
	n    int
	flat []scalar.Float
}

func from3(m mat.Mat3) matrix { return matrix{n: 3, flat: m[:]} }
func from4(m mat.Mat4) matrix { return matrix{n: 4, flat: m[:]} }

func (m matrix) at(r, c int) scalar.Float { return m.flat[c*m.n+r] }

type transformEntry struct {
	name  string
	about string
	build func(p params) (matrix, error)
}

var registry = []transformEntry{
	{"identity", "4x4 identity", func(params) (matrix, error) {
		return from4(mat.Ident4()), nil
	}},
	{"translate", "translation by -vec", func(p params) (matrix, error) {
		return from4(mat.Translate4(p.v)), nil
	}},
	{"scale", "scale by -vec", func(p params) (matrix, error) {
		return from4(mat.Scale4(p.v)), nil
	}},
	{"rotate", "rotation by -angle around -axis", func(p params) (matrix, error) {
		axis, err := p.axis.TryNormalize()
		if err != nil {
			return matrix{}, fmt.Errorf("axis: %w", err)
		}
		return from4(mat.Rotate4(scalar.DegToRad(p.angleDeg), axis)), nil
	}},
	{"rotx", "rotation by -angle around x", func(p params) (matrix, error) {
		return from4(mat.RotateX4(scalar.DegToRad(p.angleDeg))), nil
	}},
	{"roty", "rotation by -angle around y", func(p params) (matrix, error) {
		return from4(mat.RotateY4(scalar.DegToRad(p.angleDeg))), nil
	}},
	{"rotz", "rotation by -angle around z", func(p params) (matrix, error) {
		return from4(mat.RotateZ4(scalar.DegToRad(p.angleDeg))), nil
	}},
	{"translate2d", "3x3 translation by -vec x,y", func(p params) (matrix, error) {
		return from3(mat.Translate3(p.v.Vec2())), nil
	}},
	{"scale2d", "3x3 scale by -vec x,y", func(p params) (matrix, error) {
		return from3(mat.Scale3(p.v.Vec2())), nil
	}},
	{"rotate2d", "3x3 rotation by -angle", func(p params) (matrix, error) {
		return from3(mat.Rotate3(scalar.DegToRad(p.angleDeg))), nil
	}},
	{"ortho", "orthographic -left -right -bottom -top -near -far", func(p params) (matrix, error) {
		m, err := mat.Orthographic(p.left, p.right, p.bottom, p.top, p.near, p.far)
		return from4(m), err
	}},
	{"perspective", "perspective -fov -aspect -near -far", func(p params) (matrix, error) {
		m, err := mat.Perspective(scalar.DegToRad(p.fovDeg), p.aspect, p.near, p.far)
		return from4(m), err
	}},
	{"lookat", "view matrix from -eye -center -up", func(p params) (matrix, error) {
		m, err := mat.LookAt(p.eye, p.center, p.up)
		return from4(m), err
	}},
}

func main() {
	var p params
	var err error

	vecFlag := flag.String("vec", "1,2,3", "x,y,z for translate and scale")
	angle := flag.Float64("angle", 90, "rotation angle in degrees")
	axisFlag := flag.String("axis", "0,0,1", "rotation axis x,y,z (normalized before use)")
	fov := flag.Float64("fov", 60, "vertical field of view in degrees")
	aspect := flag.Float64("aspect", 16.0/9.0, "viewport width/height")
	near := flag.Float64("near", 0.1, "near plane")
	far := flag.Float64("far", 100, "far plane")
	left := flag.Float64("left", -1, "orthographic left")
	right := flag.Float64("right", 1, "orthographic right")
	bottom := flag.Float64("bottom", -1, "orthographic bottom")
	top := flag.Float64("top", 1, "orthographic top")
	eyeFlag := flag.String("eye", "0,0,5", "camera position x,y,z")
	centerFlag := flag.String("center", "0,0,0", "camera target x,y,z")
	upFlag := flag.String("up", "0,1,0", "camera up direction x,y,z")
	flat := flag.Bool("flat", false, "print the flat column-major array instead of a grid")
	inverse := flag.Bool("inverse", false, "also print the inverse and determinant")
	all := flag.Bool("all", false, "show all transforms")
	list := flag.Bool("list", false, "list available transform names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gminfo [flags] [transform-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints transform and projection matrices.\n")
		fmt.Fprintf(os.Stderr, "Without arguments or with -all, prints every transform.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  gminfo perspective ortho\n")
		fmt.Fprintf(os.Stderr, "  gminfo -angle 30 -axis 1,1,0 rotate\n")
		fmt.Fprintf(os.Stderr, "  gminfo -flat -eye 0,0,5 lookat\n")
		fmt.Fprintf(os.Stderr, "  gminfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	vecFlags := []struct {
		name string
		in   string
		out  *vec.Vec3
	}{
		{"vec", *vecFlag, &p.v},
		{"axis", *axisFlag, &p.axis},
		{"eye", *eyeFlag, &p.eye},
		{"center", *centerFlag, &p.center},
		{"up", *upFlag, &p.up},
	}
	for _, f := range vecFlags {
		if *f.out, err = parseVec3(f.in); err != nil {
			fmt.Fprintf(os.Stderr, "error: -%s: %v\n", f.name, err)
			os.Exit(2)
		}
	}
	p.angleDeg = scalar.Float(*angle)
	p.fovDeg = scalar.Float(*fov)
	p.aspect = scalar.Float(*aspect)
	p.near, p.far = scalar.Float(*near), scalar.Float(*far)
	p.left, p.right = scalar.Float(*left), scalar.Float(*right)
	p.bottom, p.top = scalar.Float(*bottom), scalar.Float(*top)

	names := flag.Args()
	if len(names) == 0 || *all {
		names = nil
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(os.Stderr, names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching transforms\n")
		os.Exit(1)
	}

	fmt.Printf("precision: float%d  kernel: %s\n\n", scalar.BitSize, kernel.Backend())
	if failed := printMatrices(os.Stdout, os.Stderr, entries, p, *flat, *inverse); failed > 0 {
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}
	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
}

func resolveEntries(warn io.Writer, names []string) []transformEntry {
	byName := make(map[string]transformEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []transformEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(warn, "warning: unknown transform %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (vec.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return vec.Vec3{}, fmt.Errorf("want 3 comma-separated values, got %q", s)
	}
	var xyz [3]scalar.Float
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), scalar.BitSize)
		if err != nil {
			return vec.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		xyz[i] = scalar.Float(f)
	}
	return vec.New3(xyz[0], xyz[1], xyz[2]), nil
}

// printMatrices writes each matrix to out and returns how many failed to
// build. Failures are reported on errOut.
func printMatrices(out, errOut io.Writer, entries []transformEntry, p params, flat, inverse bool) int {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	failed := 0
	for _, e := range entries {
		m, err := e.build(p)
		if err != nil {
			_, _ = fmt.Fprintf(errOut, "error: %s: %v\n", e.name, err)
			failed++
			continue
		}

		if err := writeMatrix(tw, e.name+" ("+e.about+")", m, flat); err != nil {
			_, _ = fmt.Fprintf(errOut, "error: failed to write output: %v\n", err)
			return failed + 1
		}
		if inverse {
			if err := writeInverse(tw, e.name, m, flat); err != nil {
				_, _ = fmt.Fprintf(errOut, "error: %s: %v\n", e.name, err)
				failed++
			}
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(errOut, "error: failed to flush output: %v\n", err)
		failed++
	}
	return failed
}

func writeInverse(w io.Writer, name string, m matrix, flat bool) error {
	var (
		inv matrix
		det scalar.Float
	)
	switch m.n {
	case 3:
		var m3 mat.Mat3
		copy(m3[:], m.flat)
		i3, err := m3.Inverse()
		if err != nil {
			return err
		}
		inv, det = from3(i3), m3.Det()
	default:
		var m4 mat.Mat4
		copy(m4[:], m.flat)
		i4, err := m4.Inverse()
		if err != nil {
			return err
		}
		inv, det = from4(i4), m4.Det()
	}
	return writeMatrix(w, fmt.Sprintf("%s inverse (det=%g)", name, det), inv, flat)
}

func writeMatrix(w io.Writer, label string, m matrix, flat bool) error {
	if _, err := fmt.Fprintf(w, "%s\n", label); err != nil {
		return err
	}
	if flat {
		strs := make([]string, len(m.flat))
		for i, v := range m.flat {
			strs[i] = strconv.FormatFloat(float64(v), 'g', 6, scalar.BitSize)
		}
		_, err := fmt.Fprintf(w, "[%s]\n\n", strings.Join(strs, ", "))
		return err
	}
	for r := 0; r < m.n; r++ {
		for c := 0; c < m.n; c++ {
			if _, err := fmt.Fprintf(w, "%.6g\t", m.at(r, c)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}
