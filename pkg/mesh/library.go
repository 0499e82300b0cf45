package mesh

type libraryKey struct {
	kind  Kind
	param int
}

// Library hands out one shared mesh per kind and parameter. Meshes returned
// by Get must be treated as read-only.
type Library struct {
	meshes map[libraryKey]*Mesh
}

// NewLibrary creates an empty mesh cache
func NewLibrary() *Library {
	return &Library{meshes: make(map[libraryKey]*Mesh)}
}

// Get returns the cached mesh for kind, generating it on first use
func (l *Library) Get(kind Kind, param int) *Mesh {
	key := libraryKey{kind: kind, param: normalizeParam(kind, param)}
	if m, ok := l.meshes[key]; ok {
		return m
	}
	m := Generate(kind, key.param)
	l.meshes[key] = m
	return m
}

// Len returns the number of distinct meshes generated so far
func (l *Library) Len() int {
	return len(l.meshes)
}

func normalizeParam(kind Kind, param int) int {
	switch kind {
	case KindGear:
		if param <= 0 {
			return DefaultGearTeeth
		}
		return param
	case KindSpring:
		if param <= 0 {
			return DefaultSpringCoils
		}
		return param
	default:
		return 0
	}
}
