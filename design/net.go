package design

// Net is a named grouping of links. Membership is stored verbatim: the
// existence of the referenced links is not enforced at construction.
type Net struct {
	// ID is the net's identifier; nil marks the net invalid.
	ID NetID `json:"id"`

	// Name is an optional net name.
	Name string `json:"name,omitempty"`

	// Links lists the member links in insertion order.
	Links []LinkID `json:"links,omitempty"`
}

// IsValid reports whether the net has a non-nil id.
func (n Net) IsValid() bool {
	return !n.ID.IsNil()
}

// clone returns a copy with its own Links backing array.
func (n Net) clone() Net {
	if n.Links != nil {
		n.Links = append([]LinkID(nil), n.Links...)
	}
	return n
}
