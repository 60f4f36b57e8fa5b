package teststat

// Stat is a handle to a sampled-value series bound to one name. Samples are
// retained in append order, bounded by the registry's max-stats window.
type Stat struct {
	reg  *Registry
	name Name
}

// Stat returns a series handle for name, eagerly creating an empty series if
// absent. Registering the same name twice keeps the existing samples;
// a verbosity option, when given, overwrites the stored level.
func (r *Registry) Stat(name Name, opts ...RegOption) *Stat {
	r.register(name, opts)
	r.stats.LoadOrStore(name.key, statEntry{name: name})
	return &Stat{reg: r, name: name}
}

// Add appends one sample, trimming the series to the most-recent window when
// the registry is bounded. The trim-and-append runs under the stats store
// mutex so two writers can never produce a window longer than the bound.
func (s *Stat) Add(v float32) {
	r := s.reg
	r.statsMu.Lock()
	defer r.statsMu.Unlock()

	var cur []float32
	if e, ok := r.stats.Load(s.name.key); ok {
		se, ok2 := e.(statEntry)
		if !ok2 {
			r.reportInvariantViolation("stat_type", s.name)
		} else {
			cur = se.vals
		}
	}

	keep := cur
	if m := r.cfg.maxStats; m > 0 && len(keep) >= m {
		keep = keep[len(keep)-(m-1):]
	}
	// always a fresh slice: concurrent readers hold the previous one
	next := make([]float32, 0, len(keep)+1)
	next = append(next, keep...)
	next = append(next, v)

	r.stats.Store(s.name.key, statEntry{name: s.name, vals: next})
}

// Values returns a copy of the retained window in append order.
// The read is a lock-free best-effort snapshot.
func (s *Stat) Values() []float32 {
	return s.reg.StatValues(s.name)
}

// String renders the retained window using the shared sample-list format:
// up to 3 values, then an omission marker.
func (s *Stat) String() string {
	return formatSamples(s.Values())
}

// StatValues returns a copy of the samples retained for name, or nil when the
// series was never registered or has been cleared.
func (r *Registry) StatValues(name Name) []float32 {
	v, ok := r.stats.Load(name.key)
	if !ok {
		return nil
	}
	e, ok2 := v.(statEntry)
	if !ok2 {
		r.reportInvariantViolation("stat_type", name)
		return nil
	}
	if len(e.vals) == 0 {
		return nil
	}
	out := make([]float32, len(e.vals))
	copy(out, e.vals)
	return out
}
