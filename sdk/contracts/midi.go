package contracts

// MIDICommand is the status byte of a MIDI channel voice message. The low
// nibble carries the channel and is zero in these constants.
type MIDICommand = byte

const (
	// NoteOff releases a sounding note.
	NoteOff MIDICommand = 0x80
	// NoteOn starts a note at a given velocity.
	NoteOn MIDICommand = 0x90
	// ControlChange adjusts a controller such as sustain or volume.
	ControlChange MIDICommand = 0xB0
	// ProgramChange selects an instrument patch.
	ProgramChange MIDICommand = 0xC0
	// PitchBend alters the pitch of sounding notes.
	PitchBend MIDICommand = 0xE0
)

// ClientMIDIOut defines an interface for MIDI output operations.
//
// A client holds at most one open output device at a time and provides no
// internal locking: Open, Close and Send must not be called concurrently
// without external synchronization.
type ClientMIDIOut interface {
	Init() error                  // Logs available devices and opens the configured one. Never fails.
	Deinit() error                // Releases any open device. Safe to call repeatedly or without Init.
	ListDevices() []DeviceInfo    // Lists available MIDI output devices in OS enumeration order.
	Open(deviceName string) error // Opens a device by exact name, or the default one for DeviceAuto / "".
	Close() error                 // Silences and releases the open device, if any.
	Send(message []byte) error    // Transmits one raw MIDI message to the open device.
}
