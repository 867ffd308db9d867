package contracts

// CoreMIDIConfig holds configuration for CoreMIDI.
type CoreMIDIConfig struct {
	ClientName string // Name of the MIDI client registered with CoreMIDI.
}

// ClientOptions defines the configuration options for the MIDI output client.
type ClientOptions struct {
	Logger         Logger          // Logger for logging events and errors.
	LogLevel       LogLevel        // Level of logging to use.
	MIDIEnabled    bool            // Whether Init should open the configured device.
	DeviceName     string          // Device Init opens: DeviceAuto or an exact name.
	CoreMIDIConfig *CoreMIDIConfig // Configuration specific to CoreMIDI.
}

// Option is a function that modifies ClientOptions.
type Option func(*ClientOptions)

// WithLogger sets the logger for the MIDI output client.
func WithLogger(l Logger) Option {
	return func(opts *ClientOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the MIDI output client.
func WithLogLevel(level LogLevel) Option {
	return func(opts *ClientOptions) {
		opts.LogLevel = level
	}
}

// WithMIDIEnabled controls whether Init opens the configured device.
func WithMIDIEnabled(enabled bool) Option {
	return func(opts *ClientOptions) {
		opts.MIDIEnabled = enabled
	}
}

// WithDeviceName sets the device Init opens: DeviceAuto, or the exact name
// of a device as reported by ListDevices.
func WithDeviceName(name string) Option {
	return func(opts *ClientOptions) {
		opts.DeviceName = name
	}
}

// WithCoreMIDIConfig sets the CoreMIDI configuration for the MIDI output client.
func WithCoreMIDIConfig(config CoreMIDIConfig) Option {
	return func(opts *ClientOptions) {
		opts.CoreMIDIConfig = &config
	}
}
