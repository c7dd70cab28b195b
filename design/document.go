package design

// store is the backing state of a frozen document. It is built once by
// Builder.Freeze and never mutated afterward; every copy of a Document
// shares the same store.
type store struct {
	version  SchemaVersion
	metadata Metadata

	blocks      map[BlockID]Block
	ports       map[PortID]Port
	links       map[LinkID]Link
	nets        map[NetID]Net
	annotations map[AnnotationID]Annotation
	routes      map[RouteID]Route

	blockOrder      []BlockID
	portOrder       []PortID
	linkOrder       []LinkID
	netOrder        []NetID
	annotationOrder []AnnotationID
	routeOrder      []RouteID

	index *Index
}

// Document is an immutable snapshot of a dataflow design. The zero value is
// the empty, invalid document. Copies of a Document share one backing
// store; since nothing in a frozen store is ever mutated, a Document is
// safe to read from multiple goroutines.
type Document struct {
	s *store
}

// IsValid reports whether the document has a backing store, i.e. it came
// out of a Freeze rather than being the zero value. It says nothing about
// the validity of the contained entities; callers check those individually
// via each entity's IsValid.
func (d Document) IsValid() bool {
	return d.s != nil
}

// SchemaVersion returns the document's schema version, or
// InvalidSchemaVersion for the zero document.
func (d Document) SchemaVersion() SchemaVersion {
	if d.s == nil {
		return InvalidSchemaVersion
	}
	return d.s.version
}

// Metadata returns the document's descriptive metadata.
func (d Document) Metadata() Metadata {
	if d.s == nil {
		return Metadata{}
	}
	return d.s.metadata
}

// Index returns the derived adjacency and occupancy index computed at
// freeze time. The zero document returns an empty index.
func (d Document) Index() *Index {
	if d.s == nil || d.s.index == nil {
		return emptyIndex
	}
	return d.s.index
}

// TryBlock looks up a block by id; ok=false if unknown.
func (d Document) TryBlock(id BlockID) (Block, bool) {
	if d.s == nil {
		return Block{}, false
	}
	b, ok := d.s.blocks[id]
	return b, ok
}

// TryPort looks up a port by id; ok=false if unknown.
func (d Document) TryPort(id PortID) (Port, bool) {
	if d.s == nil {
		return Port{}, false
	}
	p, ok := d.s.ports[id]
	return p, ok
}

// TryLink looks up a link by id; ok=false if unknown.
func (d Document) TryLink(id LinkID) (Link, bool) {
	if d.s == nil {
		return Link{}, false
	}
	l, ok := d.s.links[id]
	return l, ok
}

// TryNet looks up a net by id; ok=false if unknown.
func (d Document) TryNet(id NetID) (Net, bool) {
	if d.s == nil {
		return Net{}, false
	}
	n, ok := d.s.nets[id]
	return n, ok
}

// TryAnnotation looks up an annotation by id; ok=false if unknown.
func (d Document) TryAnnotation(id AnnotationID) (Annotation, bool) {
	if d.s == nil {
		return Annotation{}, false
	}
	a, ok := d.s.annotations[id]
	return a, ok
}

// TryRoute looks up a route by id; ok=false if unknown.
func (d Document) TryRoute(id RouteID) (Route, bool) {
	if d.s == nil {
		return Route{}, false
	}
	r, ok := d.s.routes[id]
	return r, ok
}

// BlockIDs returns the block identifiers in creation order.
// The returned slice is a copy.
func (d Document) BlockIDs() []BlockID {
	if d.s == nil {
		return nil
	}
	return append([]BlockID(nil), d.s.blockOrder...)
}

// PortIDs returns the port identifiers in creation order.
// The returned slice is a copy.
func (d Document) PortIDs() []PortID {
	if d.s == nil {
		return nil
	}
	return append([]PortID(nil), d.s.portOrder...)
}

// LinkIDs returns the link identifiers in creation order.
// The returned slice is a copy.
func (d Document) LinkIDs() []LinkID {
	if d.s == nil {
		return nil
	}
	return append([]LinkID(nil), d.s.linkOrder...)
}

// NetIDs returns the net identifiers in creation order.
// The returned slice is a copy.
func (d Document) NetIDs() []NetID {
	if d.s == nil {
		return nil
	}
	return append([]NetID(nil), d.s.netOrder...)
}

// AnnotationIDs returns the annotation identifiers in creation order.
// The returned slice is a copy.
func (d Document) AnnotationIDs() []AnnotationID {
	if d.s == nil {
		return nil
	}
	return append([]AnnotationID(nil), d.s.annotationOrder...)
}

// RouteIDs returns the route identifiers in creation order.
// The returned slice is a copy.
func (d Document) RouteIDs() []RouteID {
	if d.s == nil {
		return nil
	}
	return append([]RouteID(nil), d.s.routeOrder...)
}

// Counts is a per-kind entity tally of a document.
type Counts struct {
	Blocks      int `json:"blocks"`
	Ports       int `json:"ports"`
	Links       int `json:"links"`
	Nets        int `json:"nets"`
	Annotations int `json:"annotations"`
	Routes      int `json:"routes"`
}

// Total returns the sum over all entity kinds.
func (c Counts) Total() int {
	return c.Blocks + c.Ports + c.Links + c.Nets + c.Annotations + c.Routes
}

// Counts returns the per-kind entity tally.
func (d Document) Counts() Counts {
	if d.s == nil {
		return Counts{}
	}
	return Counts{
		Blocks:      len(d.s.blocks),
		Ports:       len(d.s.ports),
		Links:       len(d.s.links),
		Nets:        len(d.s.nets),
		Annotations: len(d.s.annotations),
		Routes:      len(d.s.routes),
	}
}
