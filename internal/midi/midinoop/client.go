// Package midinoop provides the MIDI output client used on platforms
// without a MIDI backend. Every operation either no-ops or fails trivially,
// so callers need no platform conditionals of their own.
package midinoop

import (
	"errors"

	"github.com/leandrodaf/midiout/sdk/contracts"
)

// ErrUnsupportedPlatform is returned by Open and Send when no MIDI backend
// exists for the running platform.
var ErrUnsupportedPlatform = errors.New("MIDI not supported on this platform")

type noopClient struct {
	logger contracts.Logger
}

// NewMIDIOutClient creates the no-op MIDI output client.
func NewMIDIOutClient(options *contracts.ClientOptions) (contracts.ClientMIDIOut, error) {
	return &noopClient{logger: options.Logger}, nil
}

// Init reports the missing backend and succeeds.
func (m *noopClient) Init() error {
	m.logger.Info("MIDI support not implemented on this platform")
	return nil
}

// Deinit is a no-op.
func (m *noopClient) Deinit() error {
	return nil
}

// ListDevices always reports no devices.
func (m *noopClient) ListDevices() []contracts.DeviceInfo {
	return nil
}

// Open always fails; no device handle is ever held.
func (m *noopClient) Open(deviceName string) error {
	m.logger.Warn("MIDI not supported on this platform")
	return ErrUnsupportedPlatform
}

// Close is a no-op.
func (m *noopClient) Close() error {
	return nil
}

// Send drops the message.
func (m *noopClient) Send(message []byte) error {
	return ErrUnsupportedPlatform
}
