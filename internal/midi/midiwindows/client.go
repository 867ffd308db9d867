package midiwindows

import (
	"errors"
	"fmt"

	"github.com/leandrodaf/midiout/sdk/contracts"
)

// Error definitions for MIDI output handling issues.
var (
	ErrNoOutputDevices = errors.New("no MIDI output devices available")
	ErrNoOpenDevice    = errors.New("no MIDI output device open")
	ErrEmptyMessage    = errors.New("empty MIDI message")
)

// shortMessageMax is the longest message midiOutShortMsg can carry.
const shortMessageMax = 3

// midiOutAPI is the seam over the winmm midiOut calls the client drives.
// winmmMidiOut implements it against winmm.dll; tests substitute a fake.
// Open-state bookkeeping lives in ClientOut, so implementations only hold
// the OS handle and the in-flight long message header.
type midiOutAPI interface {
	NumDevs() int
	DevCaps(id int) (contracts.DeviceInfo, error)
	Open(id int) error
	Reset() error
	Close() error
	ShortMsg(msg uint32) error
	PrepareHeader(message []byte) error
	LongMsg() error
	UnprepareHeader() error
}

// ClientOut manages MIDI output on Windows through the multimedia API. It
// holds at most one open device and provides no internal locking.
type ClientOut struct {
	logger contracts.Logger
	opts   *contracts.ClientOptions
	api    midiOutAPI
	open   bool
}

func newClientOut(options *contracts.ClientOptions, api midiOutAPI) *ClientOut {
	return &ClientOut{
		logger: options.Logger,
		opts:   options,
		api:    api,
	}
}

// Init logs the available output devices and, when the options enable MIDI
// and carry a device name, opens it. A failed open is logged, not returned.
func (m *ClientOut) Init() error {
	m.logger.Info("Initializing MIDI subsystem")

	devices := m.ListDevices()
	m.logger.Info(fmt.Sprintf("Found %d MIDI output device(s)", len(devices)))
	for _, device := range devices {
		m.logger.Info(fmt.Sprintf("  MIDI device %d: %s", device.ID, device.Name))
	}

	if m.opts.MIDIEnabled && m.opts.DeviceName != "" {
		if err := m.Open(m.opts.DeviceName); err != nil {
			m.logger.Warn("Failed to open MIDI output device")
		} else {
			m.logger.Info("MIDI output device opened successfully")
		}
	}
	return nil
}

// Deinit shuts the subsystem down, releasing the open device if any.
func (m *ClientOut) Deinit() error {
	m.logger.Info("Shutting down MIDI subsystem")
	return m.Close()
}

// ListDevices lists the currently available MIDI output devices. Devices
// whose capability query fails are skipped.
func (m *ClientOut) ListDevices() []contracts.DeviceInfo {
	numDevices := m.api.NumDevs()
	devices := make([]contracts.DeviceInfo, 0, numDevices)
	for i := 0; i < numDevices; i++ {
		caps, err := m.api.DevCaps(i)
		if err != nil {
			m.logger.Warn(fmt.Sprintf("Failed to get information for MIDI device %d", i))
			continue
		}
		devices = append(devices, caps)
	}
	return devices
}

// Open selects and opens an output device. DeviceAuto and the empty string
// select the default device at index 0; any other name must match a device
// exactly, falling back to index 0 when none does. A previously open device
// is closed first.
func (m *ClientOut) Open(deviceName string) error {
	if m.open {
		m.Close()
	}

	deviceID := 0
	if deviceName != contracts.DeviceAuto && deviceName != "" {
		if id, found := resolveDeviceID(m.ListDevices(), deviceName); found {
			deviceID = id
			m.logger.Info(fmt.Sprintf("Found MIDI device '%s' at index %d", deviceName, deviceID))
		} else {
			m.logger.Warn(fmt.Sprintf("MIDI device '%s' not found, using default", deviceName))
		}
	}

	if m.api.NumDevs() == 0 {
		m.logger.Warn("No MIDI output devices available")
		return ErrNoOutputDevices
	}

	if err := m.api.Open(deviceID); err != nil {
		m.logger.Error(fmt.Sprintf("Failed to open MIDI device %d: %v", deviceID, err))
		return fmt.Errorf("failed to open MIDI device %d: %w", deviceID, err)
	}

	m.open = true
	m.logger.Info(fmt.Sprintf("Opened MIDI output device %d", deviceID))
	return nil
}

// Close resets the open device, silencing in-flight notes, and releases it.
// It is a no-op when no device is open.
func (m *ClientOut) Close() error {
	if !m.open {
		return nil
	}

	m.api.Reset()
	m.api.Close()
	m.open = false
	m.logger.Debug("Closed MIDI output device")
	return nil
}

// Send transmits one raw MIDI message to the open device. Messages of up to
// three bytes go out as a single short message; longer ones, system
// exclusive data in practice, use the prepared header protocol.
func (m *ClientOut) Send(message []byte) error {
	if !m.open {
		m.logger.Debug("MIDI send called but no device open")
		return ErrNoOpenDevice
	}
	if len(message) == 0 {
		return ErrEmptyMessage
	}

	if len(message) <= shortMessageMax {
		if err := m.api.ShortMsg(packShortMessage(message)); err != nil {
			m.logger.Warn(fmt.Sprintf("MIDI short message send failed: %v", err))
			return err
		}
		return nil
	}

	if err := m.api.PrepareHeader(message); err != nil {
		m.logger.Warn(fmt.Sprintf("MIDI prepare header failed: %v", err))
		return err
	}

	sendErr := m.api.LongMsg()

	// The header must be unprepared even when the send failed.
	m.api.UnprepareHeader()

	if sendErr != nil {
		m.logger.Warn(fmt.Sprintf("MIDI long message send failed: %v", sendErr))
		return sendErr
	}
	return nil
}

// packShortMessage packs up to three message bytes into the word
// midiOutShortMsg expects: byte 0 in bits 0-7, byte 1 in bits 8-15, byte 2
// in bits 16-23. Missing bytes contribute zero bits.
func packShortMessage(message []byte) uint32 {
	packed := uint32(message[0])
	if len(message) > 1 {
		packed |= uint32(message[1]) << 8
	}
	if len(message) > 2 {
		packed |= uint32(message[2]) << 16
	}
	return packed
}

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
