package mididarwin

import (
	"testing"

	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/stretchr/testify/assert"
)

func TestResolveDeviceID(t *testing.T) {
	devices := []contracts.DeviceInfo{
		{ID: 0, Name: "IAC Driver Bus 1"},
		{ID: 1, Name: "Roland UM-ONE"},
	}

	tests := []struct {
		name     string
		device   string
		expected int
		found    bool
	}{
		{name: "first device", device: "IAC Driver Bus 1", expected: 0, found: true},
		{name: "exact match", device: "Roland UM-ONE", expected: 1, found: true},
		{name: "unknown name", device: "No Such Device", expected: 0, found: false},
		{name: "match is case sensitive", device: "roland um-one", expected: 0, found: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id, found := resolveDeviceID(devices, tc.device)
			assert.Equal(t, tc.expected, id)
			assert.Equal(t, tc.found, found)
		})
	}
}

func TestResolveDeviceIDWithoutDevices(t *testing.T) {
	id, found := resolveDeviceID(nil, "Roland UM-ONE")
	assert.Equal(t, 0, id)
	assert.False(t, found)
}
