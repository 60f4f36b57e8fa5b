package teststat

// Counter is a handle to a signed 64-bit counter bound to one name.
// Handles are cheap; the value lives in the registry's counters store.
type Counter struct {
	reg  *Registry
	name Name
}

// Counter returns a counter handle for name, eagerly creating the entry at 0
// if absent. Registering the same name twice keeps the existing value;
// a verbosity option, when given, overwrites the stored level.
func (r *Registry) Counter(name Name, opts ...RegOption) *Counter {
	r.register(name, opts)
	// single atomic upsert: no check-then-insert race, no reset of an
	// existing value
	r.counters.LoadOrStore(name.key, counterEntry{name: name})
	return &Counter{reg: r, name: name}
}

// Inc adds delta to the stored value, creating the entry at 0 first if
// absent. delta may be negative or zero. The read-modify-write runs under the
// counters store mutex, serializing counter mutations across all names.
func (c *Counter) Inc(delta int64) {
	r := c.reg
	r.countersMu.Lock()
	defer r.countersMu.Unlock()

	var cur int64
	if v, ok := r.counters.Load(c.name.key); ok {
		e, ok2 := v.(counterEntry)
		if !ok2 {
			r.reportInvariantViolation("counter_type", c.name)
		} else {
			cur = e.val
		}
	}
	r.counters.Store(c.name.key, counterEntry{name: c.name, val: cur + delta})
}

// Value returns the counter's current value, or 0 if it was never registered
// or has been cleared. The read is a lock-free best-effort snapshot.
func (c *Counter) Value() int64 {
	return c.reg.CounterValue(c.name)
}

// CounterValue returns the current value of the counter registered under
// name, or 0 when absent.
func (r *Registry) CounterValue(name Name) int64 {
	v, ok := r.counters.Load(name.key)
	if !ok {
		return 0
	}
	e, ok2 := v.(counterEntry)
	if !ok2 {
		r.reportInvariantViolation("counter_type", name)
		return 0
	}
	return e.val
}
