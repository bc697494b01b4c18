package hardware

import "fmt"

// ParseTarget returns the Target whose identifier equals raw exactly.
func ParseTarget(raw string) (Target, error) {
	for _, t := range Targets() {
		if raw == targetTable[t].id {
			return t, nil
		}
	}
	return TargetUnknown, &UnrecognizedIdentifierError{Kind: KindTarget, Received: raw}
}

// ParseDevBoard returns the DevBoard whose identifier equals raw exactly.
func ParseDevBoard(raw string) (DevBoard, error) {
	for _, b := range DevBoards() {
		if raw == devBoardTable[b].id {
			return b, nil
		}
	}
	return NoDevBoard, &UnrecognizedIdentifierError{Kind: KindDevBoard, Received: raw}
}

// String returns the stable identifier used on the command line and in
// config files. Values outside the catalog render as Target(n).
func (t Target) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
	return targetTable[t].id
}

// String returns the stable identifier used on the command line and in
// config files. Values outside the catalog render as DevBoard(n).
func (b DevBoard) String() string {
	if !b.Valid() {
		return fmt.Sprintf("DevBoard(%d)", uint8(b))
	}
	return devBoardTable[b].id
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("marshal %s: not in catalog", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Target) UnmarshalText(text []byte) error {
	v, err := ParseTarget(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b DevBoard) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("marshal %s: not in catalog", b)
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *DevBoard) UnmarshalText(text []byte) error {
	v, err := ParseDevBoard(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// TargetNames returns the identifiers accepted by ParseTarget.
func TargetNames() []string {
	targets := Targets()
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	return names
}

// DevBoardNames returns the identifiers accepted by ParseDevBoard.
func DevBoardNames() []string {
	boards := DevBoards()
	names := make([]string, len(boards))
	for i, b := range boards {
		names[i] = b.String()
	}
	return names
}
