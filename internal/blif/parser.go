package blif

import (
	"strings"

	"github.com/pborges/blifnet/internal/netlist"
)

// directive is the closed set of line kinds the grammar knows. Dispatch
// goes through one exhaustive switch instead of a string comparison chain.
type directive int

const (
	dirUnknown directive = iota
	dirModel
	dirInputs
	dirOutputs
	dirNames
	dirGate
	dirAttr
	dirParam
	dirEnd
)

var directives = map[string]directive{
	".model":   dirModel,
	".inputs":  dirInputs,
	".outputs": dirOutputs,
	".names":   dirNames,
	".gate":    dirGate,
	".attr":    dirAttr,
	".param":   dirParam,
	".end":     dirEnd,
}

// unifyEdge records "driver feeds alias" from a two-argument .names entry.
// Edges are resolved after the whole input is read.
type unifyEdge struct {
	driver *netlist.Net
	alias  *netlist.Net
}

type parser struct {
	s       *scanner
	design  *netlist.Design
	ioModel *netlist.Model

	top   *netlist.Model    // set by .model
	inst  *netlist.Instance // most recent .gate, target of .attr/.param
	unify []unifyEdge

	// The .names table parse ends by reading the directive line that
	// follows it. pending hands that already-read line back to the outer
	// loop; done is set by .end and by end of input inside a table.
	pending bool
	done    bool
}

func (p *parser) parse() (*netlist.Design, error) {
	for !p.done {
		if p.pending {
			p.pending = false
		} else {
			ok, err := p.s.next()
			if err != nil {
				return nil, err
			}
			if !ok {
				break
			}
		}
		if err := p.dispatch(); err != nil {
			return nil, err
		}
	}

	if p.top == nil {
		return nil, p.s.errorf("no top model has been defined")
	}
	if err := p.resolveUnify(); err != nil {
		return nil, err
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return p.design, nil
}

func (p *parser) dispatch() error {
	words := p.s.words
	if !strings.HasPrefix(words[0], ".") {
		return p.s.errorf("expected directive")
	}
	switch directives[words[0]] {
	case dirModel:
		return p.parseModel(words)
	case dirInputs:
		return p.parseInterface(words, netlist.DirIn)
	case dirOutputs:
		return p.parseInterface(words, netlist.DirOut)
	case dirNames:
		return p.parseNames(words)
	case dirGate:
		return p.parseGate(words)
	case dirAttr:
		return p.parseAttr(words)
	case dirParam:
		return p.parseParam(words)
	case dirEnd:
		if p.top == nil {
			return p.s.errorf(".end directive outside of model definition")
		}
		p.done = true
		return nil
	default:
		return p.s.errorf("unknown directive '%s'", words[0])
	}
}

func (p *parser) parseModel(words []string) error {
	if len(words) != 2 {
		return p.s.errorf("invalid .model directive: expected exactly 1 argument, got %d", len(words)-1)
	}
	if p.top != nil {
		return p.s.errorf("definition of multiple models is not supported")
	}
	if p.design.FindModel(words[1]) != nil {
		return p.s.errorf("model `%s' already defined", words[1])
	}
	p.top = netlist.NewModel(p.design, words[1])
	p.design.SetTop(p.top)
	return nil
}

// parseInterface handles .inputs and .outputs. A port named in both lists
// is promoted to bidirectional; directions are never demoted.
func (p *parser) parseInterface(words []string, dir netlist.Direction) error {
	if p.top == nil {
		return p.s.errorf("%s directive outside of model definition", words[0])
	}
	opposite := netlist.DirOut
	if dir == netlist.DirOut {
		opposite = netlist.DirIn
	}
	for _, name := range words[1:] {
		port := p.top.FindPort(name)
		if port != nil {
			if port.Direction() == opposite {
				port.SetDirection(netlist.DirInout)
			}
		} else {
			port = p.top.AddPort(name, dir)
		}
		port.Connect(p.top.FindOrAddNet(name))
	}
	return nil
}

// parseNames consumes a .names directive and its truth-table rows. The
// one-argument form declares a constant net (ZERO until a "1" row is seen);
// the two-argument form queues a net-unification edge that is only valid
// once a "1 1" row has confirmed it. Rows are read until the next directive
// line, which is handed back to the outer loop unconsumed.
func (p *parser) parseNames(words []string) error {
	if p.top == nil {
		return p.s.errorf(".names directive outside of model definition")
	}
	namesPos := p.s.pos()
	n := len(words)

	var namesNet *netlist.Net
	switch n {
	case 2:
		namesNet = p.top.FindOrAddNet(words[1])
		namesNet.SetIsConstant(true)
		namesNet.SetConstant(netlist.ValueZero)
	case 3:
		p.unify = append(p.unify, unifyEdge{
			driver: p.top.FindOrAddNet(words[1]),
			alias:  p.top.FindOrAddNet(words[2]),
		})
	default:
		return p.s.errorf("invalid .names directive: expected 1 or 2 arguments, got %d", n-1)
	}

	saw11 := false
	for {
		ok, err := p.s.next()
		if err != nil {
			return err
		}
		if !ok {
			if n == 3 && !saw11 {
				return errorAt(namesPos, "invalid .names directive: unexpected end of file")
			}
			p.done = true
			return nil
		}

		row := p.s.words
		if strings.HasPrefix(row[0], ".") {
			if n == 3 && !saw11 {
				return errorAt(namesPos, "invalid .names directive: .names entry expected")
			}
			p.pending = true
			return nil
		}

		if len(row) != n-1 {
			return p.s.errorf("invalid .names entry: number of gates does not match specified number of nets")
		}
		if n == 2 {
			switch row[0] {
			case "1":
				namesNet.SetConstant(netlist.ValueOne)
			case "0":
				// accepted, leaves the constant as is
			default:
				return p.s.errorf("invalid .names entry: gate must be either 1 or 0")
			}
		} else {
			if row[0] != "1" || row[1] != "1" {
				return p.s.errorf("invalid .names entry: both gates must be 1 here")
			}
			saw11 = true
		}
	}
}

func (p *parser) parseGate(words []string) error {
	if p.top == nil {
		return p.s.errorf(".gate directive outside of model definition")
	}
	if len(words) < 2 {
		return p.s.errorf("invalid .gate directive: missing name")
	}
	instOf := p.design.FindModel(words[1])
	if instOf == nil {
		return p.s.errorf("unknown model `%s'", words[1])
	}
	inst := p.top.AddInstance(instOf)
	p.inst = inst

	for _, w := range words[2:] {
		eq := strings.IndexByte(w, '=')
		if eq < 0 {
			return p.s.errorf("invalid formal-actual")
		}
		formal, actual := w[:eq], w[eq+1:]
		if actual == "" {
			// unconnected pin
			continue
		}
		port := inst.FindPort(formal)
		if port == nil {
			return p.s.errorf("unknown formal `%s'", formal)
		}
		port.Connect(p.top.FindOrAddNet(actual))
	}
	return nil
}

func (p *parser) parseAttr(words []string) error {
	if len(words) != 3 {
		return p.s.errorf("invalid .attr directive: expected exactly 2 arguments, got %d", len(words)-1)
	}
	if p.inst == nil {
		return p.s.errorf("no gate for .attr directive")
	}
	if strings.HasPrefix(words[2], `"`) {
		inner, err := p.unquote(words[2])
		if err != nil {
			return err
		}
		p.inst.SetAttr(words[1], netlist.StringConst(p.s.pos(), inner))
		return nil
	}
	bv, ok := parseBits(words[2])
	if !ok {
		return p.s.errorf("invalid character in integer constant")
	}
	p.inst.SetAttr(words[1], netlist.BitsConst(p.s.pos(), bv))
	return nil
}

func (p *parser) parseParam(words []string) error {
	if len(words) != 3 {
		return p.s.errorf("invalid .param directive: expected exactly 2 arguments, got %d", len(words)-1)
	}
	if p.inst == nil {
		return p.s.errorf("no gate for .param directive")
	}
	if strings.HasPrefix(words[2], `"`) {
		inner, err := p.unquote(words[2])
		if err != nil {
			return err
		}
		// Radiant writes numeric literals inside quoted strings; decode
		// them when possible, otherwise keep the literal text.
		bv, ok, err := parseQuotedNumber(inner)
		if err != nil {
			return p.s.errorf("%v", err)
		}
		if ok {
			p.inst.SetParam(words[1], netlist.BitsConst(p.s.pos(), bv))
		} else {
			p.inst.SetParam(words[1], netlist.StringConst(p.s.pos(), inner))
		}
		return nil
	}
	bv, ok := parseBits(words[2])
	if !ok {
		return p.s.errorf("invalid character in integer constant")
	}
	p.inst.SetParam(words[1], netlist.BitsConst(p.s.pos(), bv))
	return nil
}

func (p *parser) unquote(w string) (string, error) {
	if len(w) < 2 || !strings.HasSuffix(w, `"`) {
		return "", p.s.errorf("invalid string constant")
	}
	return w[1 : len(w)-1], nil
}
