//go:build !windows
// +build !windows

package midiwindows

import (
	"fmt"

	"github.com/leandrodaf/midiout/sdk/contracts"
)

type dummyMIDIOutClient struct {
	logger contracts.Logger
}

// NewMIDIOutClient initializes a dummy MIDI output client for non-Windows systems.
func NewMIDIOutClient(options *contracts.ClientOptions) (contracts.ClientMIDIOut, error) {
	options.Logger.Info("Using dummy MIDI output client for non-Windows system")
	return &dummyMIDIOutClient{
		logger: options.Logger,
	}, nil
}

// Init logs a warning indicating that Init was called on the dummy MIDI output client.
func (m *dummyMIDIOutClient) Init() error {
	m.logger.Warn("Init called on dummy MIDI output client")
	return nil
}

// Deinit logs a warning indicating that Deinit was called on the dummy MIDI output client.
func (m *dummyMIDIOutClient) Deinit() error {
	m.logger.Warn("Deinit called on dummy MIDI output client")
	return nil
}

// ListDevices logs a warning and reports no devices.
func (m *dummyMIDIOutClient) ListDevices() []contracts.DeviceInfo {
	m.logger.Warn("ListDevices called on dummy MIDI output client")
	return nil
}

// Open logs a warning and returns an error indicating that MIDI functionality is unavailable on this platform.
func (m *dummyMIDIOutClient) Open(deviceName string) error {
	m.logger.Warn("Open called on dummy MIDI output client")
	return fmt.Errorf("MIDI functionality is not available on this platform")
}

// Close logs a warning indicating that Close was called on the dummy MIDI output client.
func (m *dummyMIDIOutClient) Close() error {
	m.logger.Warn("Close called on dummy MIDI output client")
	return nil
}

// Send logs a warning and returns an error indicating that MIDI functionality is unavailable on this platform.
func (m *dummyMIDIOutClient) Send(message []byte) error {
	m.logger.Warn("Send called on dummy MIDI output client")
	return fmt.Errorf("MIDI functionality is not available on this platform")
}
