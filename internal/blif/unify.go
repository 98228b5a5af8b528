package blif

import "github.com/pborges/blifnet/internal/netlist"

// resolveUnify collapses the nets aliased by two-argument .names entries.
// replacement maps an aliased-away net to its surviving representative.
// Resolving a driver follows the mapping iteratively to a fixed point and
// then path-compresses every visited entry, so pathological alias chains
// stay cheap without recursion.
func (p *parser) resolveUnify() error {
	replacement := make(map[*netlist.Net]*netlist.Net)
	for _, e := range p.unify {
		r := e.driver
		for {
			t := replacement[r]
			if t == nil {
				break
			}
			r = t
		}
		for x := e.driver; x != r; {
			next := replacement[x]
			replacement[x] = r
			x = next
		}

		if e.alias == r {
			return p.s.errorf(".names cycle")
		}
		e.alias.Replace(r)
		if _, seen := replacement[e.alias]; seen {
			return p.s.errorf("conflicting .names outputs")
		}
		replacement[e.alias] = r
	}

	// every net that ended up mapped was aliased away
	for n := range replacement {
		p.top.RemoveNet(n)
	}
	return nil
}
