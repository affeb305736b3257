package forcefield

import "github.com/san-kum/strandsim/internal/world"

// The interaction topology is the same for every monomer and is expressed
// as term tables over (particle kind, monomer offset) sites. A term is
// evaluated for monomer i when i >= term.min, which is the single place
// where the chain's boundary conditions live: monomer 0 has no previous
// phosphate, and the backbone dihedral reaching two monomers back needs
// i >= 2.

type kind int

const (
	sugar kind = iota
	base
	phosphate
)

type site struct {
	kind kind
	off  int // monomer offset, 0 or negative
}

type bondTerm struct {
	a, b site
	d0   float64
	min  int
}

// angleTerm's b site is the central particle.
type angleTerm struct {
	a, b, c site
	theta0  float64
	min     int
}

type dihedralTerm struct {
	a, b, c, d site
	phi0       float64
	min        int
}

type stackTerm struct {
	a, b site
	min  int
}

var bondTerms = []bondTerm{
	{site{sugar, 0}, site{base, 0}, world.BondSB, 0},
	{site{sugar, 0}, site{phosphate, 0}, world.BondS5P, 0},
	{site{sugar, 0}, site{phosphate, -1}, world.BondS3P, 1},
}

var angleTerms = []angleTerm{
	{site{phosphate, 0}, site{sugar, 0}, site{base, 0}, AngleP5SB, 0},
	{site{phosphate, 0}, site{sugar, 0}, site{phosphate, -1}, AngleP5S3P, 1},
	{site{phosphate, -1}, site{sugar, 0}, site{base, 0}, AngleP3SB, 1},
	{site{sugar, -1}, site{phosphate, -1}, site{sugar, 0}, AngleS5P3S, 1},
}

var dihedralTerms = []dihedralTerm{
	{site{phosphate, 0}, site{sugar, 0}, site{phosphate, -1}, site{sugar, -1}, DihedralP5S3P5S, 1},
	{site{base, 0}, site{sugar, 0}, site{phosphate, -1}, site{sugar, -1}, DihedralBS3P5S, 1},
	{site{sugar, 0}, site{phosphate, -1}, site{sugar, -1}, site{base, -1}, DihedralS3P5SB, 1},
	{site{sugar, 0}, site{phosphate, -1}, site{sugar, -1}, site{phosphate, -2}, DihedralS3P5S3P, 2},
}

var stackTerms = []stackTerm{
	{site{base, 0}, site{base, -1}, 1},
}

func resolve(w *world.World, s site, i int) *world.Particle {
	idx := i + s.off
	switch s.kind {
	case sugar:
		return &w.Sugars[idx]
	case base:
		return &w.Bases[idx]
	default:
		return &w.Phosphates[idx]
	}
}
