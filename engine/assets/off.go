package assets

import (
	"bufio"
	"fmt"
	"io"
	stdmath "math"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type offFile struct {
	Header string    `EOL* @Ident`
	Rows   []*offRow `( @@ | EOL )*`
}

type offRow struct {
	Pos    lexer.Position
	Values []float64 `@Number+`
}

var offParser = participle.MustBuild[offFile](
	participle.Lexer(meshLexer),
)

// OFF is the Object File Format. The counts may share the header line, colours after the
// vertex ids of a face are ignored and polygons are split into triangle fans.
type OFF struct{}

func (OFF) Name() string         { return "off" }
func (OFF) Extensions() []string { return []string{".off"} }

func (OFF) Read(r io.Reader) (*Buffers, error) {
	ast, err := offParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedFile, "off: %v", err)
	}
	if ast.Header != "OFF" {
		return nil, errors.Wrapf(ErrMalformedFile, "off: header %q", ast.Header)
	}
	if len(ast.Rows) == 0 || len(ast.Rows[0].Values) < 2 {
		return nil, errors.Wrap(ErrMalformedFile, "off: missing element counts")
	}

	counts := ast.Rows[0].Values
	nv, okV := asIndex(counts[0])
	nf, okF := asIndex(counts[1])
	if !okV || !okF {
		return nil, errors.Wrapf(ErrMalformedFile, "off: bad counts %v", counts)
	}
	rows := ast.Rows[1:]
	if len(rows) < nv+nf {
		return nil, errors.Wrapf(ErrMalformedFile, "off: expected %d rows, found %d", nv+nf, len(rows))
	}

	b := &Buffers{Coords: make([]float64, 0, 3*nv)}
	for _, row := range rows[:nv] {
		if len(row.Values) < 3 {
			return nil, errors.Wrapf(ErrMalformedFile, "off %s: vertex with %d coordinates", row.Pos, len(row.Values))
		}
		b.Coords = append(b.Coords, row.Values[0], row.Values[1], row.Values[2])
	}
	for _, row := range rows[nv : nv+nf] {
		n, ok := asIndex(row.Values[0])
		if !ok || n < 3 || len(row.Values) < n+1 {
			return nil, errors.Wrapf(ErrMalformedFile, "off %s: bad face row", row.Pos)
		}
		ids := make([]int, n)
		for i := range ids {
			vid, ok := asIndex(row.Values[i+1])
			if !ok || vid >= nv {
				return nil, errors.Wrapf(ErrMalformedFile, "off %s: vertex index %v of %d", row.Pos, row.Values[i+1], nv)
			}
			ids[i] = vid
		}
		b.Faces = fan(b.Faces, ids)
	}
	return b, nil
}

// asIndex accepts non-negative integral values only.
func asIndex(v float64) (int, bool) {
	if v < 0 || v != stdmath.Trunc(v) {
		return 0, false
	}
	return int(v), true
}

func (OFF) Write(w io.Writer, b *Buffers) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "OFF\n%d %d 0\n", b.NumVerts(), b.NumFaces())
	for i := 0; i < len(b.Coords); i += 3 {
		fmt.Fprintf(bw, "%g %g %g\n", b.Coords[i], b.Coords[i+1], b.Coords[i+2])
	}
	for i := 0; i < len(b.Faces); i += 3 {
		fmt.Fprintf(bw, "3 %d %d %d\n", b.Faces[i], b.Faces[i+1], b.Faces[i+2])
	}
	return errors.Wrap(bw.Flush(), "off: write")
}
