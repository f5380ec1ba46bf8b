package assets

import (
	"bufio"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

type objFile struct {
	Statements []*objStatement `( @@ | EOL )*`
}

type objStatement struct {
	Pos lexer.Position

	Vertex *objVertex `  "v" @@`
	Face   *objFace   `| "f" @@`
	Other  *objOther  `| @@`
}

type objVertex struct {
	Coords []float64 `@Number+`
}

type objFace struct {
	Corners []*objCorner `@@+`
}

// objCorner is one of i, i/t, i//n, i/t/n. Only the vertex index is kept.
type objCorner struct {
	Index int       `@Number`
	Refs  []*objRef `@@*`
}

type objRef struct {
	Slash string   `@Slash`
	Index *float64 `@Number?`
}

// objOther covers every statement that carries no geometry (vn, vt, o, g, s, usemtl, ...).
type objOther struct {
	Keyword string   `@Ident`
	Args    []string `( @Number | @Ident | @Slash | @Symbol )*`
}

var objParser = participle.MustBuild[objFile](
	participle.Lexer(meshLexer),
)

// OBJ is the Wavefront text format. Polygons are split into triangle fans and negative
// indices count back from the last vertex read.
type OBJ struct{}

func (OBJ) Name() string         { return "obj" }
func (OBJ) Extensions() []string { return []string{".obj"} }

func (OBJ) Read(r io.Reader) (*Buffers, error) {
	ast, err := objParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedFile, "obj: %v", err)
	}

	b := &Buffers{}
	for _, st := range ast.Statements {
		switch {
		case st.Vertex != nil:
			c := st.Vertex.Coords
			if len(c) < 3 {
				return nil, errors.Wrapf(ErrMalformedFile, "obj %s: vertex with %d coordinates", st.Pos, len(c))
			}
			b.Coords = append(b.Coords, c[0], c[1], c[2])

		case st.Face != nil:
			corners := st.Face.Corners
			if len(corners) < 3 {
				return nil, errors.Wrapf(ErrMalformedFile, "obj %s: face with %d corners", st.Pos, len(corners))
			}
			ids := make([]int, len(corners))
			for i, corner := range corners {
				switch {
				case corner.Index > 0:
					ids[i] = corner.Index - 1
				case corner.Index < 0:
					ids[i] = b.NumVerts() + corner.Index
				default:
					return nil, errors.Wrapf(ErrMalformedFile, "obj %s: vertex index 0", st.Pos)
				}
			}
			b.Faces = fan(b.Faces, ids)
		}
	}

	nv := b.NumVerts()
	for i, vid := range b.Faces {
		if vid < 0 || vid >= nv {
			return nil, errors.Wrapf(ErrMalformedFile, "obj: face %d references vertex %d of %d", i/3, vid+1, nv)
		}
	}
	return b, nil
}

func (OBJ) Write(w io.Writer, b *Buffers) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", b.NumVerts(), b.NumFaces())
	for i := 0; i < len(b.Coords); i += 3 {
		fmt.Fprintf(bw, "v %g %g %g\n", b.Coords[i], b.Coords[i+1], b.Coords[i+2])
	}
	for i := 0; i < len(b.Faces); i += 3 {
		fmt.Fprintf(bw, "f %d %d %d\n", b.Faces[i]+1, b.Faces[i+1]+1, b.Faces[i+2]+1)
	}
	return errors.Wrap(bw.Flush(), "obj: write")
}
