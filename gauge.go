package teststat

import (
	"math"

	"github.com/spf13/cast"
)

// GaugeFunc produces a gauge's current value on demand. It is invoked on the
// reader's goroutine at read time and its result is never memoized. A panic
// from the callback propagates to the reader uncaught.
type GaugeFunc func() float32

// negZero is returned when reading a gauge whose mapping has been removed.
var negZero = float32(math.Copysign(0, -1))

// Gauge is a handle to a lazily evaluated gauge bound to one name.
type Gauge struct {
	reg  *Registry
	name Name
}

// AddGauge installs fn as the gauge callback for name, replacing any previous
// callback. The registry stores the callback, not a value; reads invoke it.
func (r *Registry) AddGauge(name Name, fn GaugeFunc, opts ...RegOption) *Gauge {
	r.register(name, opts)
	r.gaugesMu.Lock()
	r.gauges.Store(name.key, gaugeEntry{name: name, fn: fn})
	r.gaugesMu.Unlock()
	return &Gauge{reg: r, name: name}
}

// AddGaugeValue installs a fixed-value gauge for name. value may be any
// numeric (or numeric-convertible) type; it is coerced once at registration.
func (r *Registry) AddGaugeValue(name Name, value interface{}, opts ...RegOption) *Gauge {
	v := float32(cast.ToFloat64(value))
	return r.AddGauge(name, func() float32 { return v }, opts...)
}

// Remove deletes the gauge's mapping so that its callback is no longer
// retained by the registry. Repeated removal is a no-op; subsequent reads
// yield the negative-zero sentinel.
func (g *Gauge) Remove() {
	r := g.reg
	r.gaugesMu.Lock()
	r.gauges.Delete(g.name.key)
	r.gaugesMu.Unlock()
}

// Value evaluates the gauge now. A removed or never-registered gauge reads as
// negative zero rather than failing.
func (g *Gauge) Value() float32 {
	return g.reg.GaugeValue(g.name)
}

// GaugeValue invokes the callback registered under name and returns its
// result, or the negative-zero sentinel when no mapping exists. The callback
// reference is not retained beyond the lookup needed to invoke it.
func (r *Registry) GaugeValue(name Name) float32 {
	v, ok := r.gauges.Load(name.key)
	if !ok {
		return negZero
	}
	e, ok2 := v.(gaugeEntry)
	if !ok2 {
		r.reportInvariantViolation("gauge_type", name)
		return negZero
	}
	return e.fn()
}
