package netlist

// Standard cell registration for the iCE40 family. Only SB_IO/PACKAGE_PIN is
// load-bearing for validation; the rest exist so that .gate lines over real
// synthesizer output resolve.

type cellPin struct {
	name string
	dir  Direction
}

var stdCells = []struct {
	name string
	pins []cellPin
}{
	{
		name: "SB_IO",
		pins: []cellPin{
			{"PACKAGE_PIN", DirInout},
			{"LATCH_INPUT_VALUE", DirIn},
			{"CLOCK_ENABLE", DirIn},
			{"INPUT_CLK", DirIn},
			{"OUTPUT_CLK", DirIn},
			{"OUTPUT_ENABLE", DirIn},
			{"D_OUT_0", DirIn},
			{"D_OUT_1", DirIn},
			{"D_IN_0", DirOut},
			{"D_IN_1", DirOut},
		},
	},
	{
		name: "SB_LUT4",
		pins: []cellPin{
			{"O", DirOut},
			{"I0", DirIn},
			{"I1", DirIn},
			{"I2", DirIn},
			{"I3", DirIn},
		},
	},
	{
		name: "SB_CARRY",
		pins: []cellPin{
			{"CO", DirOut},
			{"I0", DirIn},
			{"I1", DirIn},
			{"CI", DirIn},
		},
	},
	{
		name: "SB_GB",
		pins: []cellPin{
			{"USER_SIGNAL_TO_GLOBAL_BUFFER", DirIn},
			{"GLOBAL_BUFFER_OUTPUT", DirOut},
		},
	},
}

// CreateStandardModels registers the iCE40 primitives in the design. It must
// run before parsing: the consistency pass resolves SB_IO by name.
func (d *Design) CreateStandardModels() {
	for _, c := range stdCells {
		m := NewModel(d, c.name)
		for _, p := range c.pins {
			m.AddPort(p.name, p.dir)
		}
	}
	d.createDFFModels()
	d.createRAMModels()
}

// createDFFModels registers the SB_DFF family: every combination of clock
// edge (positive, N negative), clock enable (E) and set/reset behavior
// (SR sync reset, R async reset, SS sync set, S async set).
func (d *Design) createDFFModels() {
	for _, neg := range []string{"", "N"} {
		for _, ena := range []string{"", "E"} {
			for _, sr := range []string{"", "SR", "R", "SS", "S"} {
				m := NewModel(d, "SB_DFF"+neg+ena+sr)
				m.AddPort("Q", DirOut)
				m.AddPort("C", DirIn)
				if ena == "E" {
					m.AddPort("E", DirIn)
				}
				switch sr {
				case "SR", "R":
					m.AddPort("R", DirIn)
				case "SS", "S":
					m.AddPort("S", DirIn)
				}
				m.AddPort("D", DirIn)
			}
		}
	}
}

func (d *Design) createRAMModels() {
	for _, neg := range []string{"", "NR", "NW", "NRNW"} {
		m := NewModel(d, "SB_RAM40_4K"+neg)
		addBus(m, "RDATA", 16, DirOut)
		addBus(m, "RADDR", 11, DirIn)
		addBus(m, "WADDR", 11, DirIn)
		addBus(m, "MASK", 16, DirIn)
		addBus(m, "WDATA", 16, DirIn)
		m.AddPort("RCLKE", DirIn)
		m.AddPort("RCLK", DirIn)
		m.AddPort("RE", DirIn)
		m.AddPort("WCLKE", DirIn)
		m.AddPort("WCLK", DirIn)
		m.AddPort("WE", DirIn)
	}
}

func addBus(m *Model, name string, width int, dir Direction) {
	for i := 0; i < width; i++ {
		m.AddPort(busPinName(name, i), dir)
	}
}

func busPinName(name string, i int) string {
	// matches the yosys .gate formal spelling, e.g. RDATA[7]
	buf := []byte(name)
	buf = append(buf, '[')
	if i >= 10 {
		buf = append(buf, byte('0'+i/10))
	}
	buf = append(buf, byte('0'+i%10), ']')
	return string(buf)
}
