package blif

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pborges/blifnet/internal/netlist"
)

// Format renders the design's top model back out as BLIF. The output parses
// back into an equivalent design: bidirectional ports appear in both the
// .inputs and .outputs lists, constant nets become one-argument .names
// blocks, and bit-vector consts are written as binary digits.
func Format(d *netlist.Design) string {
	var buf strings.Builder
	top := d.Top()
	fmt.Fprintf(&buf, ".model %s\n", top.Name())

	var ins, outs []string
	for _, p := range top.Ports() {
		switch p.Direction() {
		case netlist.DirIn:
			ins = append(ins, p.Name())
		case netlist.DirOut:
			outs = append(outs, p.Name())
		case netlist.DirInout:
			ins = append(ins, p.Name())
			outs = append(outs, p.Name())
		}
	}
	if len(ins) > 0 {
		fmt.Fprintf(&buf, ".inputs %s\n", strings.Join(ins, " "))
	}
	if len(outs) > 0 {
		fmt.Fprintf(&buf, ".outputs %s\n", strings.Join(outs, " "))
	}

	for _, n := range top.Nets() {
		if !n.IsConstant() {
			continue
		}
		fmt.Fprintf(&buf, ".names %s\n", n.Name())
		if n.Constant() == netlist.ValueOne {
			buf.WriteString("1\n")
		}
	}

	// A port whose net was unified away sits on a net with a different
	// name; re-emit the alias so the connection survives a re-parse.
	for _, p := range top.Ports() {
		if n := p.Connection(); n != nil && n.Name() != p.Name() {
			fmt.Fprintf(&buf, ".names %s %s\n1 1\n", n.Name(), p.Name())
		}
	}

	for _, inst := range top.Instances() {
		fmt.Fprintf(&buf, ".gate %s", inst.InstanceOf().Name())
		for _, p := range inst.Ports() {
			if p.Connection() == nil {
				continue
			}
			fmt.Fprintf(&buf, " %s=%s", p.Name(), p.Connection().Name())
		}
		buf.WriteByte('\n')
		writeConsts(&buf, ".attr", inst.Attrs())
		writeConsts(&buf, ".param", inst.Params())
	}

	buf.WriteString(".end\n")
	return buf.String()
}

// Write writes the design's top model as BLIF to w.
func Write(w io.Writer, d *netlist.Design) error {
	_, err := io.WriteString(w, Format(d))
	return err
}

func writeConsts(buf *strings.Builder, dir string, consts map[string]netlist.Const) {
	names := make([]string, 0, len(consts))
	for name := range consts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := consts[name]
		if c.Kind == netlist.ConstString {
			fmt.Fprintf(buf, "%s %s \"%s\"\n", dir, name, c.Str)
		} else {
			fmt.Fprintf(buf, "%s %s %s\n", dir, name, c.Bits)
		}
	}
}
