package design

import "github.com/tileflow/designkit/tile"

// Route is an explicit tile-level path for a link: the ordered sequence of
// grid tiles the link travels through.
type Route struct {
	// ID is the route's identifier; nil marks the route invalid.
	ID RouteID `json:"id"`

	// Link is the link this route belongs to; nil marks the route invalid.
	Link LinkID `json:"link"`

	// Waypoints is the ordered tile path.
	Waypoints []tile.Coord `json:"waypoints,omitempty"`
}

// IsValid reports whether the route has a non-nil id and a non-nil link.
func (r Route) IsValid() bool {
	return !r.ID.IsNil() && !r.Link.IsNil()
}

// clone returns a copy with its own waypoint backing array.
func (r Route) clone() Route {
	if r.Waypoints != nil {
		r.Waypoints = append([]tile.Coord(nil), r.Waypoints...)
	}
	return r
}
