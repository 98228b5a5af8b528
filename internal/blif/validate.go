package blif

import "github.com/pborges/blifnet/internal/netlist"

// validate checks electrical well-formedness of the finished graph: every
// bidirectional top-level port must reach the chip boundary through an
// SB_IO PACKAGE_PIN, and every net off the boundary has at most one driver.
func (p *parser) validate() error {
	top := p.top

	for _, port := range top.Ports() {
		if !port.IsBidir() {
			continue
		}
		if port.Connection() == nil {
			continue
		}
		q := port.ConnectionOtherPort()
		if inst := portInstance(q); inst == nil ||
			inst.InstanceOf() != p.ioModel ||
			q.Name() != "PACKAGE_PIN" {
			return p.s.errorf("toplevel inout port '%s' not connected to SB_IO PACKAGE_PIN", port.Name())
		}
	}

	// Boundary nets hang off SB_IO package pins and are driven from both
	// sides; they are exempt from the single-driver rule.
	boundary := make(map[*netlist.Net]bool)
	for _, inst := range top.Instances() {
		if inst.InstanceOf() != p.ioModel {
			continue
		}
		pin := inst.FindPort("PACKAGE_PIN")
		n := pin.Connection()
		q := pin.ConnectionOtherPort()
		if n == nil || q == nil || !isModelPort(q) {
			return p.s.errorf("SB_IO PACKAGE_PIN not connected to toplevel port")
		}
		boundary[n] = true
	}

	for _, n := range top.Nets() {
		if boundary[n] {
			continue
		}
		drivers := 0
		if n.IsConstant() {
			drivers++
		}
		for _, q := range n.Connections() {
			if q.IsOutput() {
				drivers++
			}
		}
		if drivers > 1 {
			return p.s.errorf("net `%s' has multiple drivers", n.Name())
		}
	}
	return nil
}

func portInstance(p *netlist.Port) *netlist.Instance {
	if p == nil {
		return nil
	}
	inst, _ := p.Node().(*netlist.Instance)
	return inst
}

func isModelPort(p *netlist.Port) bool {
	_, ok := p.Node().(*netlist.Model)
	return ok
}
