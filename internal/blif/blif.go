// Package blif reads the Berkeley Logic Interchange Format as emitted by
// yosys for the iCE40 flow, including the Radiant numeric-literal dialect
// in quoted parameters, and builds a validated netlist graph.
package blif

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pborges/blifnet/internal/netlist"
)

// Read parses BLIF from r. label names the input in diagnostics.
func Read(label string, r io.Reader) (*netlist.Design, error) {
	d := netlist.NewDesign()
	d.CreateStandardModels()
	p := &parser{
		s:       newScanner(label, r),
		design:  d,
		ioModel: d.FindModel("SB_IO"),
	}
	return p.parse()
}

// ReadFile parses the BLIF file at path, expanding a leading ~.
func ReadFile(path string) (*netlist.Design, error) {
	expanded := expandHome(path)
	f, err := os.Open(expanded)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", expanded)
	}
	defer f.Close()
	return Read(path, f)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
