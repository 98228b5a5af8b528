package blif

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pborges/blifnet/examples"
	"github.com/pborges/blifnet/internal/netlist"
)

// Every embedded example must parse, and writing it back out must produce
// BLIF that parses into an equivalent design.
func TestExamplesRoundTrip(t *testing.T) {
	files, err := fs.Glob(examples.FS, "*.blif")
	require.NoError(t, err)
	require.NotEmpty(t, files, "no BLIF files found in examples FS")

	for _, name := range files {
		t.Run(name, func(t *testing.T) {
			src, err := examples.FS.ReadFile(name)
			require.NoError(t, err)

			d1, err := Read(name, bytes.NewReader(src))
			require.NoError(t, err)

			text := Format(d1)
			d2, err := Read(name+" (rewritten)", strings.NewReader(text))
			require.NoError(t, err, "rewritten BLIF:\n%s", text)

			requireEquivalent(t, d1, d2)
		})
	}
}

func requireEquivalent(t *testing.T, d1, d2 *netlist.Design) {
	t.Helper()
	t1, t2 := d1.Top(), d2.Top()
	require.Equal(t, t1.Name(), t2.Name())
	require.Equal(t, portSigs(t1), portSigs(t2))
	require.Equal(t, netSigs(t1), netSigs(t2))

	i1, i2 := t1.Instances(), t2.Instances()
	require.Equal(t, len(i1), len(i2))
	for i := range i1 {
		require.Equal(t, i1[i].InstanceOf().Name(), i2[i].InstanceOf().Name())
		require.Equal(t, pinSigs(i1[i]), pinSigs(i2[i]))
		require.Equal(t, constSigs(i1[i].Attrs()), constSigs(i2[i].Attrs()))
		require.Equal(t, constSigs(i1[i].Params()), constSigs(i2[i].Params()))
	}
}

func portSigs(m *netlist.Model) []string {
	var sigs []string
	for _, p := range m.Ports() {
		sig := p.Name() + ":" + p.Direction().String()
		if n := p.Connection(); n != nil {
			sig += "=" + n.Name()
		}
		sigs = append(sigs, sig)
	}
	return sigs
}

func netSigs(m *netlist.Model) []string {
	var sigs []string
	for _, n := range m.Nets() {
		sig := n.Name()
		if n.IsConstant() {
			sig += "=" + n.Constant().String()
		}
		sigs = append(sigs, sig)
	}
	return sigs
}

func pinSigs(inst *netlist.Instance) []string {
	var sigs []string
	for _, p := range inst.Ports() {
		if n := p.Connection(); n != nil {
			sigs = append(sigs, p.Name()+"="+n.Name())
		}
	}
	return sigs
}

func constSigs(consts map[string]netlist.Const) map[string]string {
	sigs := make(map[string]string)
	for name, c := range consts {
		if c.Kind == netlist.ConstString {
			sigs[name] = "s:" + c.Str
		} else {
			sigs[name] = "b:" + c.Bits.String()
		}
	}
	return sigs
}
