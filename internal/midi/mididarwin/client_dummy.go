//go:build !darwin
// +build !darwin

package mididarwin

import (
	"fmt"

	"github.com/leandrodaf/midiout/sdk/contracts"
)

type DummyMIDIOutClient struct {
	logger contracts.Logger
}

func NewMIDIOutClient(options *contracts.ClientOptions) (contracts.ClientMIDIOut, error) {
	options.Logger.Info("Using dummy MIDI output client for non-macOS system")
	return &DummyMIDIOutClient{
		logger: options.Logger,
	}, nil
}

func (m *DummyMIDIOutClient) Init() error {
	m.logger.Warn("Init called on dummy MIDI output client")
	return nil
}

func (m *DummyMIDIOutClient) Deinit() error {
	m.logger.Warn("Deinit called on dummy MIDI output client")
	return nil
}

func (m *DummyMIDIOutClient) ListDevices() []contracts.DeviceInfo {
	m.logger.Warn("ListDevices called on dummy MIDI output client")
	return nil
}

func (m *DummyMIDIOutClient) Open(deviceName string) error {
	m.logger.Warn("Open called on dummy MIDI output client")
	return fmt.Errorf("MIDI functionality is not available on this platform")
}

func (m *DummyMIDIOutClient) Close() error {
	m.logger.Warn("Close called on dummy MIDI output client")
	return nil
}

func (m *DummyMIDIOutClient) Send(message []byte) error {
	m.logger.Warn("Send called on dummy MIDI output client")
	return fmt.Errorf("MIDI functionality is not available on this platform")
}
