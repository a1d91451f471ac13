package willowxr

// SurfaceID is a non-owning handle to a registered Bridge. The zero value
// never resolves.
type SurfaceID uint32

// SurfaceRegistry maps handles to live bridges. Holders of a SurfaceID must
// resolve it through Lookup on every use, so a torn-down surface reads as
// "no surface" instead of a dangling pointer.
type SurfaceRegistry struct {
	surfaces map[SurfaceID]*Bridge
	nextID   SurfaceID
}

// NewSurfaceRegistry creates an empty registry.
func NewSurfaceRegistry() *SurfaceRegistry {
	return &SurfaceRegistry{surfaces: make(map[SurfaceID]*Bridge)}
}

// Register stores b and returns its new handle.
func (r *SurfaceRegistry) Register(b *Bridge) SurfaceID {
	r.nextID++
	id := r.nextID
	r.surfaces[id] = b
	return id
}

// Unregister drops the handle. Later lookups of id fail.
func (r *SurfaceRegistry) Unregister(id SurfaceID) {
	delete(r.surfaces, id)
}

// Lookup resolves a handle.
func (r *SurfaceRegistry) Lookup(id SurfaceID) (*Bridge, bool) {
	if id == 0 {
		return nil, false
	}
	b, ok := r.surfaces[id]
	return b, ok
}

// Len returns the number of registered surfaces.
func (r *SurfaceRegistry) Len() int {
	return len(r.surfaces)
}
