package midi

import (
	"runtime"

	"github.com/leandrodaf/midiout/internal/midi/mididarwin"
	"github.com/leandrodaf/midiout/internal/midi/midinoop"
	"github.com/leandrodaf/midiout/internal/midi/midiwindows"
	"github.com/leandrodaf/midiout/sdk/contracts"
)

// clientInitializers maps OS names to corresponding MIDI output client initializers.
var clientInitializers = map[string]func(*contracts.ClientOptions) (contracts.ClientMIDIOut, error){
	"darwin":  mididarwin.NewMIDIOutClient,  // macOS (CoreMIDI) output client initializer.
	"windows": midiwindows.NewMIDIOutClient, // Windows (winmm) output client initializer.
}

// NewClient initializes a MIDI output client based on the current operating
// system. Platforms without a backend get the no-op client, whose Init
// succeeds trivially and which never holds a device.
//
// opts *contracts.ClientOptions: Configuration options for the MIDI output client.
//
// Returns:
//   - contracts.ClientMIDIOut: An instance of the MIDI output client.
//   - error: An error if initialization fails.
func NewClient(opts *contracts.ClientOptions) (contracts.ClientMIDIOut, error) {
	if initializer, exists := clientInitializers[runtime.GOOS]; exists {
		return initializer(opts)
	}
	return midinoop.NewMIDIOutClient(opts)
}
