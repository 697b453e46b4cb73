package engine

import "github.com/piwi3910/StowPack/internal/model"

// boxFitsWithin reports whether a box placed with its minimum corner at
// pos lies entirely inside a container of the given dimensions. The
// comparison is exact: a box flush against a container wall fits.
func boxFitsWithin(pos model.Position, dims, container model.Dimensions) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.Z >= 0 &&
		pos.X+dims.Width <= container.Width &&
		pos.Y+dims.Height <= container.Height &&
		pos.Z+dims.Depth <= container.Depth
}

// boxesOverlap reports whether two axis-aligned boxes share positive
// volume. Boxes that merely touch on a face do not overlap, so cargo can
// be packed flush against cargo.
func boxesOverlap(posA model.Position, dimsA model.Dimensions, posB model.Position, dimsB model.Dimensions) bool {
	return posA.X < posB.X+dimsB.Width && posB.X < posA.X+dimsA.Width &&
		posA.Y < posB.Y+dimsB.Height && posB.Y < posA.Y+dimsA.Height &&
		posA.Z < posB.Z+dimsB.Depth && posB.Z < posA.Z+dimsA.Depth
}
