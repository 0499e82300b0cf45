package mesh

import "strings"

// Kind is the closed set of procedural shapes the library can generate
type Kind int

const (
	KindUnknown Kind = iota
	KindBox
	KindCylinder
	KindCone
	KindSphere
	KindTorus
	KindGear
	KindSpring
)

var kindNames = map[Kind]string{
	KindUnknown:  "unknown",
	KindBox:      "box",
	KindCylinder: "cylinder",
	KindCone:     "cone",
	KindSphere:   "sphere",
	KindTorus:    "torus",
	KindGear:     "gear",
	KindSpring:   "spring",
}

// ParseKind maps a shape name, including the cube, ring and helix aliases,
// to its Kind. Unrecognized names map to KindUnknown.
func ParseKind(name string) Kind {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "box", "cube":
		return KindBox
	case "cylinder":
		return KindCylinder
	case "cone":
		return KindCone
	case "sphere":
		return KindSphere
	case "torus", "ring":
		return KindTorus
	case "gear":
		return KindGear
	case "spring", "helix":
		return KindSpring
	default:
		return KindUnknown
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// IsSpring reports whether objects of this kind respond to spring dragging
func (k Kind) IsSpring() bool {
	return k == KindSpring
}
