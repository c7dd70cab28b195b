package design

import (
	"io"
	"log/slog"
	"time"

	"github.com/tileflow/designkit/tile"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets a structured logger for the builder. Edits and freezes
// are logged at Debug level. If not provided, the builder is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithTracer sets an OpenTelemetry tracer. When configured, each Freeze
// records a span carrying entity counts and the collision count. Without a
// tracer the builder records nothing.
func WithTracer(tracer trace.Tracer) Option {
	return func(b *Builder) {
		b.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter. When configured, Freeze records a
// freeze counter, a freeze-duration histogram, and a colliding-tile
// counter. Without a meter the builder records nothing.
func WithMeter(meter metric.Meter) Option {
	return func(b *Builder) {
		b.meter = meter
	}
}

// Builder accumulates edits against private entity tables and publishes
// them as an immutable Document via Freeze. A Builder is an ordinary
// mutable value; it is not safe for concurrent use.
//
// Creation does not validate: malformed input (unknown types, zero spans,
// dangling references) is stored verbatim and detectable afterwards through
// each entity's IsValid. Removal operations report via their bool return
// whether anything was removed.
type Builder struct {
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

	logger  *slog.Logger
	tracer  trace.Tracer
	meter   metric.Meter
	metrics *builderMetrics
}

// NewBuilder creates an empty builder at the current schema version.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		version:     CurrentSchemaVersion,
		blocks:      make(map[BlockID]Block),
		ports:       make(map[PortID]Port),
		links:       make(map[LinkID]Link),
		nets:        make(map[NetID]Net),
		annotations: make(map[AnnotationID]Annotation),
		routes:      make(map[RouteID]Route),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.initMetrics()
	return b
}

// NewBuilderFrom creates a builder seeded from an existing snapshot. The
// snapshot's tables are deep-copied into the builder's private storage, so
// edits never reach the source document. A zero-value document seeds an
// empty builder.
func NewBuilderFrom(doc Document, opts ...Option) *Builder {
	b := NewBuilder(opts...)
	s := doc.s
	if s == nil {
		return b
	}
	b.version = s.version
	b.metadata = s.metadata
	for id, block := range s.blocks {
		b.blocks[id] = block.clone()
	}
	for id, port := range s.ports {
		b.ports[id] = port
	}
	for id, link := range s.links {
		b.links[id] = link.clone()
	}
	for id, net := range s.nets {
		b.nets[id] = net.clone()
	}
	for id, a := range s.annotations {
		b.annotations[id] = a.clone()
	}
	for id, route := range s.routes {
		b.routes[id] = route.clone()
	}
	b.blockOrder = append([]BlockID(nil), s.blockOrder...)
	b.portOrder = append([]PortID(nil), s.portOrder...)
	b.linkOrder = append([]LinkID(nil), s.linkOrder...)
	b.netOrder = append([]NetID(nil), s.netOrder...)
	b.annotationOrder = append([]AnnotationID(nil), s.annotationOrder...)
	b.routeOrder = append([]RouteID(nil), s.routeOrder...)
	return b
}

// SetSchemaVersion overrides the schema version the next Freeze will stamp.
// Persistence layers use this to rebuild a document at its stored version.
func (b *Builder) SetSchemaVersion(v SchemaVersion) {
	b.version = v
}

// SetMetadata sets the metadata the next Freeze will carry. The creation
// timestamp is normalized to UTC.
func (b *Builder) SetMetadata(md Metadata) {
	b.metadata = md.WithTimestamp(md.CreatedAt())
}

// CreateBlock registers a new block and returns its freshly generated id.
// Type and placement are stored as given; a zero span or unknown type makes
// the block invalid, not the call.
func (b *Builder) CreateBlock(typ BlockType, placement Placement, displayName string) BlockID {
	id := NewBlockID()
	b.blocks[id] = Block{
		ID:          id,
		Type:        typ,
		Placement:   placement,
		DisplayName: displayName,
	}
	b.blockOrder = append(b.blockOrder, id)
	b.logger.Debug("block created", "block", id, "type", typ, "anchor", placement.Anchor)
	return id
}

// CreatePort registers a new port owned by the given block and returns its
// freshly generated id. If the owner exists, the port is appended to the
// owner's port list; port order is append-only and carries positional
// semantics downstream. An unknown owner still yields a stored (dangling)
// port.
func (b *Builder) CreatePort(owner BlockID, dir PortDirection, typ PortType, name string, capacity int) PortID {
	id := NewPortID()
	b.ports[id] = Port{
		ID:        id,
		Owner:     owner,
		Direction: dir,
		Type:      typ,
		Name:      name,
		Capacity:  capacity,
	}
	b.portOrder = append(b.portOrder, id)
	if block, ok := b.blocks[owner]; ok {
		block.Ports = append(block.Ports, id)
		b.blocks[owner] = block
	}
	b.logger.Debug("port created", "port", id, "owner", owner, "direction", dir)
	return id
}

// CreateLink registers a new link between two ports and returns its freshly
// generated id. Endpoint existence is not checked here; dangling links are
// filtered when the index is built.
func (b *Builder) CreateLink(from, to PortID, label string) LinkID {
	id := NewLinkID()
	b.links[id] = Link{
		ID:    id,
		From:  from,
		To:    to,
		Label: label,
	}
	b.linkOrder = append(b.linkOrder, id)
	b.logger.Debug("link created", "link", id, "from", from, "to", to)
	return id
}

// SetLinkRouteOverride replaces (or, with nil, clears) a link's route
// override. It returns false when the link is unknown or the new value is
// identical to the current one, true when the link changed.
func (b *Builder) SetLinkRouteOverride(id LinkID, override *RouteOverride) bool {
	link, ok := b.links[id]
	if !ok {
		return false
	}
	switch {
	case link.Override == nil && override == nil:
		return false
	case link.Override != nil && override != nil && link.Override.Equal(*override):
		return false
	}
	if override == nil {
		link.Override = nil
	} else {
		o := override.clone()
		link.Override = &o
	}
	b.links[id] = link
	b.logger.Debug("link route override set", "link", id, "cleared", override == nil)
	return true
}

// CreateNet registers a new net grouping the given links and returns its
// freshly generated id. Membership is stored verbatim.
func (b *Builder) CreateNet(name string, links []LinkID) NetID {
	id := NewNetID()
	b.nets[id] = Net{
		ID:    id,
		Name:  name,
		Links: append([]LinkID(nil), links...),
	}
	b.netOrder = append(b.netOrder, id)
	b.logger.Debug("net created", "net", id, "links", len(links))
	return id
}

// CreateAnnotation registers a new annotation and returns its freshly
// generated id. Targets are stored verbatim; their existence is not
// cross-checked.
func (b *Builder) CreateAnnotation(kind AnnotationKind, text, tag string, targets AnnotationTargets) AnnotationID {
	id := NewAnnotationID()
	b.annotations[id] = Annotation{
		ID:      id,
		Kind:    kind,
		Text:    text,
		Targets: targets.clone(),
		Tag:     tag,
	}
	b.annotationOrder = append(b.annotationOrder, id)
	b.logger.Debug("annotation created", "annotation", id, "kind", kind)
	return id
}

// CreateRoute registers a new tile-level route for a link and returns its
// freshly generated id.
func (b *Builder) CreateRoute(link LinkID, waypoints []tile.Coord) RouteID {
	id := NewRouteID()
	b.routes[id] = Route{
		ID:        id,
		Link:      link,
		Waypoints: append([]tile.Coord(nil), waypoints...),
	}
	b.routeOrder = append(b.routeOrder, id)
	b.logger.Debug("route created", "route", id, "link", link, "waypoints", len(waypoints))
	return id
}

// RemoveLink removes a link. It returns true iff the link existed.
func (b *Builder) RemoveLink(id LinkID) bool {
	if _, ok := b.links[id]; !ok {
		return false
	}
	delete(b.links, id)
	b.linkOrder = removeID(b.linkOrder, id)
	b.logger.Debug("link removed", "link", id)
	return true
}

// RemoveBlock removes a block with cascade: every port the block owned and
// every link touching one of those ports goes with it. Unrelated entities
// are untouched; nets, annotations, and routes keep their references
// verbatim even when those now dangle. It returns true iff the block
// existed.
func (b *Builder) RemoveBlock(id BlockID) bool {
	block, ok := b.blocks[id]
	if !ok {
		return false
	}

	removedPorts := make(map[PortID]bool, len(block.Ports))
	for _, pid := range block.Ports {
		if _, exists := b.ports[pid]; exists {
			removedPorts[pid] = true
			delete(b.ports, pid)
		}
	}

	var removedLinks []LinkID
	for lid, link := range b.links {
		if removedPorts[link.From] || removedPorts[link.To] {
			removedLinks = append(removedLinks, lid)
		}
	}
	for _, lid := range removedLinks {
		delete(b.links, lid)
		b.linkOrder = removeID(b.linkOrder, lid)
	}

	if len(removedPorts) > 0 {
		kept := b.portOrder[:0]
		for _, pid := range b.portOrder {
			if !removedPorts[pid] {
				kept = append(kept, pid)
			}
		}
		b.portOrder = kept
	}

	delete(b.blocks, id)
	b.blockOrder = removeID(b.blockOrder, id)
	b.logger.Debug("block removed", "block", id,
		"ports", len(removedPorts), "links", len(removedLinks))
	return true
}

// RemoveNet removes a net. It returns true iff the net existed.
func (b *Builder) RemoveNet(id NetID) bool {
	if _, ok := b.nets[id]; !ok {
		return false
	}
	delete(b.nets, id)
	b.netOrder = removeID(b.netOrder, id)
	b.logger.Debug("net removed", "net", id)
	return true
}

// RemoveAnnotation removes an annotation. It returns true iff the
// annotation existed.
func (b *Builder) RemoveAnnotation(id AnnotationID) bool {
	if _, ok := b.annotations[id]; !ok {
		return false
	}
	delete(b.annotations, id)
	b.annotationOrder = removeID(b.annotationOrder, id)
	b.logger.Debug("annotation removed", "annotation", id)
	return true
}

// RemoveRoute removes a route. It returns true iff the route existed.
func (b *Builder) RemoveRoute(id RouteID) bool {
	if _, ok := b.routes[id]; !ok {
		return false
	}
	delete(b.routes, id)
	b.routeOrder = removeID(b.routeOrder, id)
	b.logger.Debug("route removed", "route", id)
	return true
}

// Freeze publishes the builder's current tables as a new immutable
// Document and computes a fresh Index over them. The tables are copied
// out, so the same builder can keep mutating without affecting documents
// it already froze.
func (b *Builder) Freeze() Document {
	start := time.Now()

	s := &store{
		version:         b.version,
		metadata:        b.metadata,
		blocks:          make(map[BlockID]Block, len(b.blocks)),
		ports:           make(map[PortID]Port, len(b.ports)),
		links:           make(map[LinkID]Link, len(b.links)),
		nets:            make(map[NetID]Net, len(b.nets)),
		annotations:     make(map[AnnotationID]Annotation, len(b.annotations)),
		routes:          make(map[RouteID]Route, len(b.routes)),
		blockOrder:      append([]BlockID(nil), b.blockOrder...),
		portOrder:       append([]PortID(nil), b.portOrder...),
		linkOrder:       append([]LinkID(nil), b.linkOrder...),
		netOrder:        append([]NetID(nil), b.netOrder...),
		annotationOrder: append([]AnnotationID(nil), b.annotationOrder...),
		routeOrder:      append([]RouteID(nil), b.routeOrder...),
	}
	for id, block := range b.blocks {
		s.blocks[id] = block.clone()
	}
	for id, port := range b.ports {
		s.ports[id] = port
	}
	for id, link := range b.links {
		s.links[id] = link.clone()
	}
	for id, net := range b.nets {
		s.nets[id] = net.clone()
	}
	for id, a := range b.annotations {
		s.annotations[id] = a.clone()
	}
	for id, route := range b.routes {
		s.routes[id] = route.clone()
	}
	s.index = buildIndex(s)

	doc := Document{s: s}
	b.recordFreeze(doc, time.Since(start))
	b.logger.Debug("document frozen",
		"blocks", len(s.blocks), "ports", len(s.ports), "links", len(s.links),
		"collisions", len(s.index.collisions))
	return doc
}

// removeID drops the first occurrence of id from order, preserving the
// relative order of the rest.
func removeID[T comparable](order []T, id T) []T {
	for i, candidate := range order {
		if candidate == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
