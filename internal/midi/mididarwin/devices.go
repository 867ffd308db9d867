package mididarwin

import "github.com/leandrodaf/midiout/sdk/contracts"

// resolveDeviceID returns the enumeration index of the device whose name
// matches exactly.
func resolveDeviceID(devices []contracts.DeviceInfo, name string) (int, bool) {
	for _, device := range devices {
		if device.Name == name {
			return device.ID, true
		}
	}
	return 0, false
}
