package format

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/taigrr/geomkit/pkg/color"
	"github.com/taigrr/geomkit/pkg/math3d"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("format: invalid syntax")

// parseList splits "<a, b, c>" into n floats. The brackets are optional
// and either ',' or ';' separates components.
func parseList(s string, n int) ([]float32, error) {
	body := strings.TrimSpace(s)
	if strings.HasPrefix(body, "<") != strings.HasSuffix(body, ">") {
		return nil, fmt.Errorf("%w: unbalanced brackets in %q", ErrSyntax, s)
	}
	body = strings.TrimSuffix(strings.TrimPrefix(body, "<"), ">")

	parts := strings.FieldsFunc(body, func(r rune) bool { return r == ',' || r == ';' })
	if len(parts) != n {
		return nil, fmt.Errorf("%w: want %d components in %q, got %d", ErrSyntax, n, s, len(parts))
	}

	out := make([]float32, n)
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: component %d of %q: %w", ErrSyntax, i, s, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// ParseVec2 parses the form written by Vec2.String.
func ParseVec2(s string) (math3d.Vec2, error) {
	f, err := parseList(s, 2)
	if err != nil {
		return math3d.Vec2{}, err
	}
	return math3d.V2(f[0], f[1]), nil
}

// ParseVec3 parses the form written by Vec3.String.
func ParseVec3(s string) (math3d.Vec3, error) {
	f, err := parseList(s, 3)
	if err != nil {
		return math3d.Vec3{}, err
	}
	return math3d.V3(f[0], f[1], f[2]), nil
}

// ParseVec4 parses the form written by Vec4.String.
func ParseVec4(s string) (math3d.Vec4, error) {
	f, err := parseList(s, 4)
	if err != nil {
		return math3d.Vec4{}, err
	}
	return math3d.V4(f[0], f[1], f[2], f[3]), nil
}

// ParseColor accepts "#RRGGBB", "#RRGGBBAA" or "r,g,b" with 0-255
// components. Colors without alpha are opaque.
func ParseColor(s string) (color.Color4, error) {
	s = strings.TrimSpace(s)
	if hexStr, ok := strings.CutPrefix(s, "#"); ok {
		b, err := hex.DecodeString(hexStr)
		if err != nil || (len(b) != 3 && len(b) != 4) {
			return color.Color4{}, fmt.Errorf("%w: color %q", ErrSyntax, s)
		}
		if len(b) == 3 {
			b = append(b, 0xFF)
		}
		return color.NewColorBgra(b[0], b[1], b[2], b[3]).Color4(), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.Color4{}, fmt.Errorf("%w: color %q", ErrSyntax, s)
	}
	var c [3]uint8
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return color.Color4{}, fmt.Errorf("%w: color %q: %w", ErrSyntax, s, err)
		}
		c[i] = uint8(v)
	}
	return color.NewColorBgra(c[0], c[1], c[2], 0xFF).Color4(), nil
}
