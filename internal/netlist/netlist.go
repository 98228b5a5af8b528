// Package netlist holds the in-memory graph a parsed BLIF file becomes:
// a Design owning Models, which own Ports, Nets and Instances. The graph is
// built single-threaded by the parser and is not safe for concurrent
// mutation.
package netlist

import "sort"

// Direction of a port, seen from the node it belongs to.
type Direction int

const (
	DirIn Direction = iota
	DirOut
	DirInout
)

func (d Direction) String() string {
	switch d {
	case DirIn:
		return "input"
	case DirOut:
		return "output"
	default:
		return "inout"
	}
}

// Node is the owner of a Port: either a Model (an interface pin) or an
// Instance (a pin binding on a gate).
type Node interface {
	node()
}

func (*Model) node()    {}
func (*Instance) node() {}

// Design owns all models of one parse: the user's top model plus the
// registered standard cells.
type Design struct {
	models map[string]*Model
	top    *Model
}

func NewDesign() *Design {
	return &Design{models: make(map[string]*Model)}
}

// FindModel returns the model named name, or nil.
func (d *Design) FindModel(name string) *Model {
	return d.models[name]
}

func (d *Design) SetTop(m *Model) { d.top = m }
func (d *Design) Top() *Model     { return d.top }

// Model is a named module: an ordered set of interface ports, a set of nets
// and the gate instances placed inside it.
type Model struct {
	design    *Design
	name      string
	ports     map[string]*Port
	portOrder []*Port
	nets      map[string]*Net
	instances []*Instance
}

// NewModel creates a model and registers it in d. Model names are unique
// within a design.
func NewModel(d *Design, name string) *Model {
	if d.models[name] != nil {
		panic("netlist: duplicate model " + name)
	}
	m := &Model{
		design: d,
		name:   name,
		ports:  make(map[string]*Port),
		nets:   make(map[string]*Net),
	}
	d.models[name] = m
	return m
}

func (m *Model) Name() string { return m.name }

// FindPort returns the interface port named name, or nil.
func (m *Model) FindPort(name string) *Port {
	return m.ports[name]
}

// AddPort creates a new interface port. Port names are unique within a
// model.
func (m *Model) AddPort(name string, dir Direction) *Port {
	if m.ports[name] != nil {
		panic("netlist: duplicate port " + name + " on model " + m.name)
	}
	p := &Port{owner: m, name: name, dir: dir}
	m.ports[name] = p
	m.portOrder = append(m.portOrder, p)
	return p
}

// Ports returns the interface ports in declaration order.
func (m *Model) Ports() []*Port {
	out := make([]*Port, len(m.portOrder))
	copy(out, m.portOrder)
	return out
}

// FindNet returns the net named name, or nil.
func (m *Model) FindNet(name string) *Net {
	return m.nets[name]
}

// FindOrAddNet returns the net named name, creating it if absent.
func (m *Model) FindOrAddNet(name string) *Net {
	if n := m.nets[name]; n != nil {
		return n
	}
	n := &Net{name: name}
	m.nets[name] = n
	return n
}

// RemoveNet detaches a net from the model. The net must already be
// disconnected from every port.
func (m *Model) RemoveNet(n *Net) {
	if len(n.conns) != 0 {
		panic("netlist: removing connected net " + n.name)
	}
	delete(m.nets, n.name)
}

// Nets returns the model's nets sorted by name, so that passes over the
// graph report in a stable order.
func (m *Model) Nets() []*Net {
	out := make([]*Net, 0, len(m.nets))
	for _, n := range m.nets {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// AddInstance places a gate of model of inside m.
func (m *Model) AddInstance(of *Model) *Instance {
	inst := &Instance{
		parent:     m,
		instanceOf: of,
		ports:      make(map[string]*Port),
		attrs:      make(map[string]Const),
		params:     make(map[string]Const),
	}
	m.instances = append(m.instances, inst)
	return inst
}

// Instances returns the placed gates in placement order.
func (m *Model) Instances() []*Instance {
	out := make([]*Instance, len(m.instances))
	copy(out, m.instances)
	return out
}

// Port is a named, directioned connection point on a model or an instance,
// connected to at most one net.
type Port struct {
	owner Node
	name  string
	dir   Direction
	conn  *Net
}

func (p *Port) Name() string         { return p.name }
func (p *Port) Node() Node           { return p.owner }
func (p *Port) Direction() Direction { return p.dir }

// SetDirection changes the port direction. Callers only promote
// (IN or OUT to INOUT), never demote.
func (p *Port) SetDirection(dir Direction) { p.dir = dir }

func (p *Port) IsBidir() bool { return p.dir == DirInout }

// IsOutput reports whether the port drives its net: an instance port drives
// when it is an output of the gate, a model port drives when it is an input
// pin (the pin sources the net inside the model). Bidirectional ports never
// count as drivers; boundary nets are exempted separately.
func (p *Port) IsOutput() bool {
	if _, ok := p.owner.(*Instance); ok {
		return p.dir == DirOut
	}
	return p.dir == DirIn
}

// Connect attaches the port to net n, detaching it from its current net
// first if it has one.
func (p *Port) Connect(n *Net) {
	if p.conn == n {
		return
	}
	if p.conn != nil {
		p.conn.removeConn(p)
	}
	p.conn = n
	n.addConn(p)
}

// Connection returns the connected net, or nil.
func (p *Port) Connection() *Net { return p.conn }

// ConnectionOtherPort returns the single other port on this port's net when
// the net has exactly two connections, or nil.
func (p *Port) ConnectionOtherPort() *Port {
	if p.conn == nil || len(p.conn.conns) != 2 {
		return nil
	}
	for _, q := range p.conn.conns {
		if q != p {
			return q
		}
	}
	return nil
}

// Net is one electrical signal: a set of connected ports and, optionally, a
// constant logic level.
type Net struct {
	name       string
	isConstant bool
	constant   Value
	conns      []*Port
}

func (n *Net) Name() string { return n.name }

func (n *Net) IsConstant() bool     { return n.isConstant }
func (n *Net) SetIsConstant(b bool) { n.isConstant = b }
func (n *Net) Constant() Value      { return n.constant }
func (n *Net) SetConstant(v Value)  { n.constant = v }

// Connections returns the connected ports in connection order.
func (n *Net) Connections() []*Port {
	out := make([]*Port, len(n.conns))
	copy(out, n.conns)
	return out
}

// Replace moves every connection from n onto r, leaving n disconnected.
// This is the one structural rewrite performed after parsing, used to
// collapse nets aliased by two-argument .names entries.
func (n *Net) Replace(r *Net) {
	for _, p := range n.conns {
		p.conn = r
		r.conns = append(r.conns, p)
	}
	n.conns = nil
}

func (n *Net) addConn(p *Port) {
	n.conns = append(n.conns, p)
}

func (n *Net) removeConn(p *Port) {
	for i, q := range n.conns {
		if q == p {
			n.conns = append(n.conns[:i], n.conns[i+1:]...)
			return
		}
	}
}

// Instance is a placed gate: one model instantiated inside another. Pin
// bindings are created lazily as formals are first referenced, so an
// instance only carries ports for pins that appear in the source.
type Instance struct {
	parent     *Model
	instanceOf *Model
	ports      map[string]*Port
	portOrder  []*Port
	attrs      map[string]Const
	params     map[string]Const
}

func (i *Instance) Parent() *Model     { return i.parent }
func (i *Instance) InstanceOf() *Model { return i.instanceOf }

// FindPort returns the instance's binding for the formal pin named name,
// creating it on first use. Returns nil when the instantiated model has no
// such pin.
func (i *Instance) FindPort(name string) *Port {
	if p := i.ports[name]; p != nil {
		return p
	}
	formal := i.instanceOf.FindPort(name)
	if formal == nil {
		return nil
	}
	p := &Port{owner: i, name: name, dir: formal.dir}
	i.ports[name] = p
	i.portOrder = append(i.portOrder, p)
	return p
}

// Ports returns the pin bindings created so far, in first-use order.
func (i *Instance) Ports() []*Port {
	out := make([]*Port, len(i.portOrder))
	copy(out, i.portOrder)
	return out
}

func (i *Instance) SetAttr(name string, c Const)  { i.attrs[name] = c }
func (i *Instance) SetParam(name string, c Const) { i.params[name] = c }

func (i *Instance) Attrs() map[string]Const  { return i.attrs }
func (i *Instance) Params() map[string]Const { return i.params }
