package domain

import "fmt"

// HouseKind discriminates the three house orientations of a board.
type HouseKind int

const (
	HouseRow HouseKind = iota
	HouseColumn
	HouseBlock
)

func (k HouseKind) String() string {
	switch k {
	case HouseRow:
		return "row"
	case HouseColumn:
		return "column"
	case HouseBlock:
		return "block"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind as its lowercase name for JSON payloads.
func (k HouseKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses the lowercase names produced by MarshalText.
func (k *HouseKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "row":
		*k = HouseRow
	case "column":
		*k = HouseColumn
	case "block":
		*k = HouseBlock
	default:
		return fmt.Errorf("unknown house kind %q", text)
	}
	return nil
}
