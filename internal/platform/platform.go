// Package platform defines the two console save layouts the converter moves between.
package platform

// Platform identifies a save layout. The zero value is Unknown and is never a
// valid conversion source or destination.
type Platform int

const (
	// Unknown is the zero value returned alongside detection errors.
	Unknown Platform = iota
	// WiiU saves are stored big-endian.
	WiiU
	// Switch saves are stored little-endian.
	Switch
)

// String returns the display name used in prompts and progress output.
func (p Platform) String() string {
	switch p {
	case WiiU:
		return "WiiU"
	case Switch:
		return "Switch"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the two real platforms.
func (p Platform) Valid() bool {
	return p == WiiU || p == Switch
}

// Destination returns the platform a save detected as p converts to.
// Unknown maps to Unknown.
func (p Platform) Destination() Platform {
	switch p {
	case WiiU:
		return Switch
	case Switch:
		return WiiU
	default:
		return Unknown
	}
}
