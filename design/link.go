package design

import "math"

// Waypoint is a finite point in world space, used by manual route
// overrides.
type Waypoint struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// IsFinite reports whether both coordinates are finite numbers.
func (w Waypoint) IsFinite() bool {
	return !math.IsNaN(w.X) && !math.IsInf(w.X, 0) &&
		!math.IsNaN(w.Y) && !math.IsInf(w.Y, 0)
}

// RouteOverride is a manually drawn path for a link: an ordered sequence of
// world-space waypoints, optionally marked authoritative so automatic
// routing must not replace it.
type RouteOverride struct {
	Waypoints     []Waypoint `json:"waypoints"`
	Authoritative bool       `json:"authoritative"`
}

// IsValid reports whether the waypoint sequence is non-empty and every
// coordinate is finite.
func (o RouteOverride) IsValid() bool {
	if len(o.Waypoints) == 0 {
		return false
	}
	for _, w := range o.Waypoints {
		if !w.IsFinite() {
			return false
		}
	}
	return true
}

// Equal reports whether two overrides carry the same waypoints in the same
// order and the same authoritative flag.
func (o RouteOverride) Equal(other RouteOverride) bool {
	if o.Authoritative != other.Authoritative || len(o.Waypoints) != len(other.Waypoints) {
		return false
	}
	for i, w := range o.Waypoints {
		if w != other.Waypoints[i] {
			return false
		}
	}
	return true
}

// clone returns a copy with its own waypoint backing array.
func (o RouteOverride) clone() RouteOverride {
	if o.Waypoints != nil {
		o.Waypoints = append([]Waypoint(nil), o.Waypoints...)
	}
	return o
}

// Link is a directed connection between two ports. A link does not itself
// verify that its endpoints exist in the document; dangling links are
// filtered when the index is built.
type Link struct {
	// ID is the link's identifier; nil marks the link invalid.
	ID LinkID `json:"id"`

	// From is the source port; nil marks the link invalid.
	From PortID `json:"from"`

	// To is the destination port; it must differ from From.
	To PortID `json:"to"`

	// Label is an optional display label.
	Label string `json:"label,omitempty"`

	// Override is the manual route override, if any.
	Override *RouteOverride `json:"override,omitempty"`
}

// IsValid reports whether id, from, and to are non-nil and the endpoints
// differ.
func (l Link) IsValid() bool {
	return !l.ID.IsNil() && !l.From.IsNil() && !l.To.IsNil() && l.From != l.To
}

// clone returns a copy with its own override storage.
func (l Link) clone() Link {
	if l.Override != nil {
		o := l.Override.clone()
		l.Override = &o
	}
	return l
}
