// Package format renders geometry values for people and parses them back.
//
// String methods on the value types always use the invariant form
// "<1.5, 2, 3>". A Printer produces the same layout with a locale's
// decimal separator; when that separator is a comma the list separator
// becomes "; " so the output stays unambiguous.
package format

import (
	"strconv"
	"strings"

	"github.com/taigrr/geomkit/pkg/bounds"
	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/geom"
	"github.com/taigrr/geomkit/pkg/math3d"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printer formats values for one locale. Numbers use the shortest form
// that parses back to the same float32, without digit grouping, with only
// the decimal separator localized. It is safe for concurrent use.
type Printer struct {
	dec string
	sep string
}

// NewPrinter returns a Printer for tag.
func NewPrinter(tag language.Tag) *Printer {
	if strings.Contains(message.NewPrinter(tag).Sprint(0.5), ",") {
		return &Printer{dec: ",", sep: "; "}
	}
	return &Printer{dec: ".", sep: ", "}
}

// Invariant formats like the String methods.
var Invariant = NewPrinter(language.Und)

// Separator returns the list separator used between components.
func (p *Printer) Separator() string { return p.sep }

// Float formats a single number.
func (p *Printer) Float(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if p.dec != "." {
		s = strings.Replace(s, ".", p.dec, 1)
	}
	return s
}

func (p *Printer) itoa(i int32) string { return strconv.FormatInt(int64(i), 10) }

func (p *Printer) list(fs ...float32) string {
	var b strings.Builder
	b.WriteByte('<')
	for i, f := range fs {
		if i > 0 {
			b.WriteString(p.sep)
		}
		b.WriteString(p.Float(f))
	}
	b.WriteByte('>')
	return b.String()
}

func (p *Printer) Vec2(v math3d.Vec2) string { return p.list(v.X, v.Y) }
func (p *Printer) Vec3(v math3d.Vec3) string { return p.list(v.X, v.Y, v.Z) }
func (p *Printer) Vec4(v math3d.Vec4) string { return p.list(v.X, v.Y, v.Z, v.W) }
func (p *Printer) Quat(q math3d.Quat) string { return p.list(q.X, q.Y, q.Z, q.W) }

func (p *Printer) Color4(c color.Color4) string {
	return "{R:" + p.Float(c.R) + " G:" + p.Float(c.G) + " B:" + p.Float(c.B) + " A:" + p.Float(c.A) + "}"
}

func (p *Printer) RectF(r geom.RectF) string {
	return "{X:" + p.Float(r.X) + " Y:" + p.Float(r.Y) + " Width:" + p.Float(r.Width) + " Height:" + p.Float(r.Height) + "}"
}

func (p *Printer) RectI(r geom.RectI) string {
	return "{X:" + p.itoa(r.X) + " Y:" + p.itoa(r.Y) + " Width:" + p.itoa(r.Width) + " Height:" + p.itoa(r.Height) + "}"
}

func (p *Printer) Plane(pl bounds.Plane) string {
	return "{Normal:" + p.Vec3(pl.Normal) + " D:" + p.Float(pl.D) + "}"
}

func (p *Printer) Ray(r bounds.Ray) string {
	return "{Position:" + p.Vec3(r.Position) + " Direction:" + p.Vec3(r.Direction) + "}"
}

func (p *Printer) Sphere(s bounds.BoundingSphere) string {
	return "{Center:" + p.Vec3(s.Center) + " Radius:" + p.Float(s.Radius) + "}"
}

func (p *Printer) Box(b bounds.BoundingBox) string {
	return "{Min:" + p.Vec3(b.Min) + " Max:" + p.Vec3(b.Max) + "}"
}
