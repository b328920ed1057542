package spot

// Registry owns the spot set in insertion order. It does no locking; callers
// serialise access through the unit of work.
type Registry struct {
	order []string
	byID  map[string]*Spot
}

func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*Spot),
	}
}

func (r *Registry) Create(id string) (*Spot, error) {
	s, err := NewSpot(id)
	if err != nil {
		return nil, err
	}
	if _, exists := r.byID[s.ID()]; exists {
		return nil, ErrDuplicateID
	}

	r.order = append(r.order, s.ID())
	r.byID[s.ID()] = s
	return s, nil
}

// Restore inserts an already-built spot, used when loading persisted state.
func (r *Registry) Restore(s *Spot) error {
	if _, exists := r.byID[s.ID()]; exists {
		return ErrDuplicateID
	}
	r.order = append(r.order, s.ID())
	r.byID[s.ID()] = s
	return nil
}

func (r *Registry) SetActive(id string, active bool) (*Spot, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.SetActive(active)
	return s, nil
}

func (r *Registry) SetRates(id string, rates Rates) (*Spot, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	s.ReplaceRates(rates)
	return s, nil
}

func (r *Registry) Delete(id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Registry) Get(id string) (*Spot, bool) {
	s, ok := r.byID[id]
	return s, ok
}

func (r *Registry) List() []*Spot {
	out := make([]*Spot, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

func (r *Registry) Len() int {
	return len(r.order)
}

func (r *Registry) Clone() *Registry {
	c := &Registry{
		order: make([]string, len(r.order)),
		byID:  make(map[string]*Spot, len(r.byID)),
	}
	copy(c.order, r.order)
	for id, s := range r.byID {
		c.byID[id] = s.clone()
	}
	return c
}
