package hardware

// Kind distinguishes the two axes of the catalog.
type Kind int

const (
	KindTarget Kind = iota
	KindDevBoard
)

// String returns the user-facing name of the kind, as used in CLI flags.
func (k Kind) String() string {
	switch k {
	case KindTarget:
		return "target"
	case KindDevBoard:
		return "dev-board"
	}
	return "unknown"
}

// Target is an FPGA chip a project is synthesized for.
// The zero value is not part of the catalog.
type Target uint8

const (
	TargetUnknown Target = iota
	TargetECP5_85K

	targetEnd
)

// DevBoard is a carrier board hosting a Target.
// The zero value means no board was chosen.
type DevBoard uint8

const (
	NoDevBoard DevBoard = iota
	DevBoardULX3S

	devBoardEnd
)

// targetInfo is the static description of one Target.
type targetInfo struct {
	id          string
	description string
	resources   []string // embedded asset file names

	synth         string // yosys synthesis command
	synthFlags    string // appended to synth in the yosys script
	placeAndRoute string // nextpnr invocation, without the --json argument
	pack          string // bitstream packer
}

// devBoardInfo is the static description of one DevBoard.
type devBoardInfo struct {
	id          string
	description string
	resources   []string // embedded asset file names

	constraintFlag string // place-and-route flag taking the constraint file
	constraintFile string // one of resources
	programmer     string // tool that flashes the bitstream onto the board
}

var targetTable = [...]targetInfo{
	TargetUnknown: {},
	TargetECP5_85K: {
		id:            "ecp5-85k",
		description:   "The 85k LUT variant of the Lattice ECP5 chip.\nhttps://www.latticesemi.com/Products/FPGAandCPLD/ECP5",
		synth:         "synth_ecp5",
		synthFlags:    "-noccu2 -nomux -nodram",
		placeAndRoute: "nextpnr-ecp5 --85k",
		pack:          "ecppack",
	},
}

var devBoardTable = [...]devBoardInfo{
	NoDevBoard: {},
	DevBoardULX3S: {
		id:             "ulx3s",
		description:    "The ULX3S dev-board made by Radiona.\nhttps://radiona.org/ulx3s/",
		resources:      []string{"ulx3s_v20.lpf"},
		constraintFlag: "--lpf",
		constraintFile: "ulx3s_v20.lpf",
		programmer:     "fujprog",
	},
}

// A variant added to the enumerations without a table entry fails to
// compile here: the index is negative or past the end of a one-element array.
var (
	_ = [1]struct{}{}[len(targetTable)-int(targetEnd)]
	_ = [1]struct{}{}[len(devBoardTable)-int(devBoardEnd)]
)

// Targets returns every catalog Target in registry order.
func Targets() []Target {
	out := make([]Target, 0, targetEnd-1)
	for t := TargetUnknown + 1; t < targetEnd; t++ {
		out = append(out, t)
	}
	return out
}

// DevBoards returns every catalog DevBoard in registry order.
func DevBoards() []DevBoard {
	out := make([]DevBoard, 0, devBoardEnd-1)
	for b := NoDevBoard + 1; b < devBoardEnd; b++ {
		out = append(out, b)
	}
	return out
}

// SupportedEntity is the display projection of a catalog entry used for
// help output, completion and prompts.
type SupportedEntity struct {
	Name        string
	Description string
}

// SupportedTargets lists the targets for display.
func SupportedTargets() []SupportedEntity {
	targets := Targets()
	out := make([]SupportedEntity, len(targets))
	for i, t := range targets {
		out[i] = SupportedEntity{Name: t.String(), Description: t.Description()}
	}
	return out
}

// SupportedDevBoards lists the dev-boards for display.
func SupportedDevBoards() []SupportedEntity {
	boards := DevBoards()
	out := make([]SupportedEntity, len(boards))
	for i, b := range boards {
		out[i] = SupportedEntity{Name: b.String(), Description: b.Description()}
	}
	return out
}

// Valid reports whether t is a catalog entry.
func (t Target) Valid() bool { return t > TargetUnknown && t < targetEnd }

// Kind returns KindTarget.
func (Target) Kind() Kind { return KindTarget }

// Description returns the human-readable description, or "" for invalid values.
func (t Target) Description() string {
	if !t.Valid() {
		return ""
	}
	return targetTable[t].description
}

// SynthCommand returns the yosys synthesis command for the chip.
func (t Target) SynthCommand() string {
	if !t.Valid() {
		return ""
	}
	return targetTable[t].synth
}

// SynthFlags returns the extra options passed to the synthesis command.
func (t Target) SynthFlags() string {
	if !t.Valid() {
		return ""
	}
	return targetTable[t].synthFlags
}

// PlaceAndRoute returns the place-and-route command for the chip.
func (t Target) PlaceAndRoute() string {
	if !t.Valid() {
		return ""
	}
	return targetTable[t].placeAndRoute
}

// PackCommand returns the bitstream packing command for the chip.
func (t Target) PackCommand() string {
	if !t.Valid() {
		return ""
	}
	return targetTable[t].pack
}

func (t Target) resourceNames() []string {
	if !t.Valid() {
		return nil
	}
	return targetTable[t].resources
}

func (Target) component() {}

// Valid reports whether b is a catalog entry. NoDevBoard is not valid.
func (b DevBoard) Valid() bool { return b > NoDevBoard && b < devBoardEnd }

// Kind returns KindDevBoard.
func (DevBoard) Kind() Kind { return KindDevBoard }

// Description returns the human-readable description, or "" for invalid values.
func (b DevBoard) Description() string {
	if !b.Valid() {
		return ""
	}
	return devBoardTable[b].description
}

// ConstraintFile returns the file name of the board's constraint resource.
func (b DevBoard) ConstraintFile() string {
	if !b.Valid() {
		return ""
	}
	return devBoardTable[b].constraintFile
}

// Programmer returns the tool used to flash a bitstream onto the board.
func (b DevBoard) Programmer() string {
	if !b.Valid() {
		return ""
	}
	return devBoardTable[b].programmer
}

func (b DevBoard) resourceNames() []string {
	if !b.Valid() {
		return nil
	}
	return devBoardTable[b].resources
}

func (DevBoard) component() {}
