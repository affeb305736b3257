package world

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/san-kum/strandsim/internal/vec3"
)

// Equilibrium bond lengths in m. S5P is the sugar to own phosphate bond,
// S3P the sugar to previous phosphate bond, SB the sugar to base bond.
const (
	BondS5P = 3.899e-10
	BondS3P = 3.559e-10
	BondSB  = 6.430e-10

	// Spacing is the vertical distance between consecutive monomers in
	// the idealized initial layout.
	Spacing = BondS5P + BondS3P
)

// Fill places the monomers in a vertical column centered on the origin in
// the x-y plane, at equilibrium bond lengths plus independent per-axis
// Gaussian jitter with standard deviation Spacing/100. Velocities are
// zeroed and per-kind masses assigned. The same seed reproduces the same
// layout exactly.
//
//	y
//	^      Ps[1]
//	|      |
//	|    5'|
//	|      Ss[1]------Bs[1]      i=1
//	|    3'|
//	|      |
//	|      Ps[0]
//	|      |
//	|    5'|
//	|      Ss[0]------Bs[0]      i=0
//	+-------------------------> x
func (w *World) Fill(seed uint64) {
	jitter := distuv.Normal{
		Mu:    0,
		Sigma: Spacing / 100,
		Src:   rand.NewSource(seed),
	}

	yoffset := -float64(w.n) * Spacing / 2
	xoffset := -BondSB / 2

	for i := 0; i < w.n; i++ {
		y := yoffset + float64(i)*Spacing

		w.Sugars[i].Pos = vec3.Vec{X: xoffset, Y: y}
		w.Bases[i].Pos = vec3.Vec{X: xoffset + BondSB, Y: y}
		w.Phosphates[i].Pos = vec3.Vec{X: xoffset, Y: y + BondS5P}

		w.Sugars[i].Pos = jitterVec(w.Sugars[i].Pos, &jitter)
		w.Bases[i].Pos = jitterVec(w.Bases[i].Pos, &jitter)
		w.Phosphates[i].Pos = jitterVec(w.Phosphates[i].Pos, &jitter)

		w.Sugars[i].Vel = vec3.Vec{}
		w.Bases[i].Vel = vec3.Vec{}
		w.Phosphates[i].Vel = vec3.Vec{}

		w.Sugars[i].Mass = MassSugar
		w.Bases[i].Mass = MassBase
		w.Phosphates[i].Mass = MassPhosphate
	}
}

func jitterVec(p vec3.Vec, n *distuv.Normal) vec3.Vec {
	return vec3.Vec{
		X: p.X + n.Rand(),
		Y: p.Y + n.Rand(),
		Z: p.Z + n.Rand(),
	}
}
