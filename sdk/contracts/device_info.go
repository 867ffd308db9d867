package contracts

// DeviceAuto is the device name that selects the system default output
// device, the one at enumeration index 0, without matching by name.
const DeviceAuto = "auto"

// DeviceInfo contains information about a MIDI output device.
type DeviceInfo struct {
	ID           int    // Enumeration index, stable only within a single enumeration.
	Name         string // Device name.
	Manufacturer string // Device manufacturer, as far as the backend reports it.
}
