package math3d

import "github.com/charmbracelet/harmonica"

// Spring3 eases a Vec3 toward a target with a damped spring, one harmonica
// spring per axis sharing the same coefficients.
type Spring3 struct {
	Pos    Vec3
	Target Vec3
	vel    [3]float64
	spring harmonica.Spring
}

// NewSpring3 creates a spring stepped fps times per second. Damping 1 is
// critically damped; lower values overshoot. An fps below 1 is treated as 1.
func NewSpring3(fps int, frequency, damping float64, start Vec3) *Spring3 {
	fps = max(fps, 1)
	return &Spring3{
		Pos:    start,
		Target: start,
		spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Update advances the spring one frame and returns the new position.
func (s *Spring3) Update() Vec3 {
	pos := [3]float64{float64(s.Pos.X), float64(s.Pos.Y), float64(s.Pos.Z)}
	target := [3]float64{float64(s.Target.X), float64(s.Target.Y), float64(s.Target.Z)}
	for i := range pos {
		pos[i], s.vel[i] = s.spring.Update(pos[i], s.vel[i], target[i])
	}
	s.Pos = Vec3{float32(pos[0]), float32(pos[1]), float32(pos[2])}
	return s.Pos
}

// Settled reports whether the spring is within tol of its target and has
// effectively stopped moving.
func (s *Spring3) Settled(tol float32) bool {
	if !s.Pos.NearEqual(s.Target, tol) {
		return false
	}
	for _, v := range s.vel {
		if float32(v) > tol || float32(v) < -tol {
			return false
		}
	}
	return true
}

// Snap jumps to p and clears any motion.
func (s *Spring3) Snap(p Vec3) {
	s.Pos, s.Target = p, p
	s.vel = [3]float64{}
}
