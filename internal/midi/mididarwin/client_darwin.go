//go:build darwin
// +build darwin

package mididarwin

import (
	"errors"
	"fmt"

	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/youpy/go-coremidi"
)

// Error definitions for MIDI output connection and handling issues.
var (
	ErrNoOutputDevices  = errors.New("no MIDI output devices available")
	ErrNoOpenDevice     = errors.New("no MIDI output device open")
	ErrEmptyMessage     = errors.New("empty MIDI message")
	ErrCreateOutputPort = errors.New("error creating output port")
)

// Controllers used to silence a channel when the device is released.
const (
	ccSustain     = 64
	ccAllNotesOff = 123
)

// ClientOut manages MIDI output on Darwin (macOS) systems through CoreMIDI.
// It holds at most one open destination and provides no internal locking.
type ClientOut struct {
	logger      contracts.Logger
	opts        *contracts.ClientOptions
	client      coremidi.Client           // CoreMIDI client instance for MIDI operations.
	outputPort  coremidi.OutputPort       // Output port packets are sent through.
	portCreated bool                      // Set once the output port exists; ports are never torn down.
	destination *coremidi.Destination     // Open destination, nil when closed.
}

// NewMIDIOutClient initializes a new ClientOut for sending MIDI events on macOS.
// Applies logging and configurations based on the provided options.
func NewMIDIOutClient(options *contracts.ClientOptions) (contracts.ClientMIDIOut, error) {
	client, err := coremidi.NewClient(options.CoreMIDIConfig.ClientName)
	if err != nil {
		return nil, err
	}
	options.Logger.Info("MIDI output client successfully created")

	return &ClientOut{
		logger: options.Logger,
		opts:   options,
		client: client,
	}, nil
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

// Deinit shuts the subsystem down, releasing the open destination if any.
func (m *ClientOut) Deinit() error {
	m.logger.Info("Shutting down MIDI subsystem")
	return m.Close()
}

// ListDevices retrieves the MIDI destinations currently visible to CoreMIDI.
func (m *ClientOut) ListDevices() []contracts.DeviceInfo {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		m.logger.Warn(fmt.Sprintf("Error listing MIDI destinations: %v", err))
		return nil
	}
	return deviceList(destinations)
}

// deviceList converts CoreMIDI destinations to device descriptors.
func deviceList(destinations []coremidi.Destination) []contracts.DeviceInfo {
	devices := make([]contracts.DeviceInfo, len(destinations))
	for i, destination := range destinations {
		destinationEntity := destination.Entity()
		devices[i] = contracts.DeviceInfo{
			ID:           i,
			Name:         destination.Name(),
			Manufacturer: destinationEntity.Manufacturer(),
		}
	}
	return devices
}

// Open selects and opens a destination. DeviceAuto and the empty string
// select the default destination at index 0; any other name must match a
// destination exactly, falling back to index 0 when none does. A previously
// open destination is closed first.
func (m *ClientOut) Open(deviceName string) error {
	if m.destination != nil {
		m.Close()
	}

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		m.logger.Error(fmt.Sprintf("Error retrieving MIDI destinations: %v", err))
		return fmt.Errorf("error retrieving MIDI destinations: %w", err)
	}
	if len(destinations) == 0 {
		m.logger.Warn("No MIDI output devices available")
		return ErrNoOutputDevices
	}

	deviceID := 0
	if deviceName != contracts.DeviceAuto && deviceName != "" {
		if id, found := resolveDeviceID(deviceList(destinations), deviceName); found {
			deviceID = id
			m.logger.Info(fmt.Sprintf("Found MIDI device '%s' at index %d", deviceName, deviceID))
		} else {
			m.logger.Warn(fmt.Sprintf("MIDI device '%s' not found, using default", deviceName))
		}
	}

	if !m.portCreated {
		m.outputPort, err = coremidi.NewOutputPort(m.client, "Output Port")
		if err != nil {
			m.logger.Error(ErrCreateOutputPort.Error())
			return fmt.Errorf("%w: %v", ErrCreateOutputPort, err)
		}
		m.portCreated = true
	}

	m.destination = &destinations[deviceID]
	m.logger.Info("MIDI device opened",
		m.logger.Field().Int("deviceID", deviceID),
		m.logger.Field().String("deviceName", m.destination.Name()))
	return nil
}

// Close silences the open destination and releases it. It is a no-op when
// no destination is open.
func (m *ClientOut) Close() error {
	if m.destination == nil {
		return nil
	}

	m.reset()
	m.destination = nil
	m.logger.Debug("Closed MIDI output device")
	return nil
}

// reset stops sounding notes and lifts sustain on every channel, the
// CoreMIDI counterpart of resetting the device on release. Send failures
// are ignored: the destination is going away regardless.
func (m *ClientOut) reset() {
	for channel := 0; channel < 16; channel++ {
		status := contracts.ControlChange | byte(channel)
		for _, controller := range []byte{ccAllNotesOff, ccSustain} {
			packet := coremidi.NewPacket([]byte{status, controller, 0}, 0)
			packet.Send(&m.outputPort, m.destination)
		}
	}
}

// Send transmits one raw MIDI message to the open destination as a single
// CoreMIDI packet. Short and system exclusive messages take the same path.
func (m *ClientOut) Send(message []byte) error {
	if m.destination == nil {
		m.logger.Debug("MIDI send called but no device open")
		return ErrNoOpenDevice
	}
	if len(message) == 0 {
		return ErrEmptyMessage
	}

	packet := coremidi.NewPacket(message, 0)
	if err := packet.Send(&m.outputPort, m.destination); err != nil {
		m.logger.Warn(fmt.Sprintf("MIDI send failed: %v", err))
		return err
	}
	return nil
}
