package viewer

import (
	"math"

	"github.com/philipparndt/goholo/pkg/geometry"
)

// Lighting constants
const (
	ambientTerm    = 0.2
	diffuseWeight  = 0.5
	fresnelWeight  = 0.8
	HighlightBoost = 1.3
	// rimThreshold is the fresnel value above which faces get a rim stroke
	rimThreshold = 0.4
)

// LightDirection is the fixed world-space light
var LightDirection = geometry.NewVector3(0.5, -0.8, 0.5).Normalize()

// Shade is the lighting result for one face
type Shade struct {
	Visible   bool
	Diffuse   float64
	Fresnel   float64
	Intensity float64
}

// Rim reports whether the face should get a rim stroke
func (s Shade) Rim(highlighted bool) bool {
	return highlighted || s.Fresnel > rimThreshold
}

// ShadeFace lights a face given its world-space normal. Faces whose
// camera-space normal points away from the viewer (z >= 0) or that have no
// area are not visible.
func ShadeFace(worldNormal geometry.Vector3, cam Camera, highlighted bool) Shade {
	length := worldNormal.Length()
	if length == 0 {
		return Shade{}
	}
	camNormal := cam.ToCamera(worldNormal)
	if camNormal.Z >= 0 {
		return Shade{}
	}

	diffuse := math.Abs(worldNormal.Dot(LightDirection)) / length
	fresnel := math.Pow(1-math.Abs(camNormal.Z)/camNormal.Length(), 3)

	intensity := ambientTerm + diffuseWeight*diffuse + fresnelWeight*fresnel
	if highlighted {
		intensity *= HighlightBoost
	}
	return Shade{Visible: true, Diffuse: diffuse, Fresnel: fresnel, Intensity: intensity}
}

// FillAlpha is the face fill opacity for a material opacity
func (s Shade) FillAlpha(opacity float64) float64 {
	return math.Min(1, opacity*s.Intensity)
}

// RimAlpha is the rim stroke opacity for a material opacity
func (s Shade) RimAlpha(opacity float64, highlighted bool) float64 {
	a := s.Fresnel * opacity
	if highlighted {
		a += 0.3
	}
	return math.Min(1, a)
}
