package midi

import (
	"github.com/leandrodaf/midiout/sdk/contracts"
)

// NewMIDIOutClient creates a new MIDI output client with the specified options.
// It applies default options and initializes the client for the running platform.
//
// opts ...contracts.Option: A variadic list of option functions to customize the client configuration.
//
// Returns:
//   - contracts.ClientMIDIOut: An instance of the MIDI output client.
//   - error: An error, if any occurred during the creation of the client.
func NewMIDIOutClient(opts ...contracts.Option) (contracts.ClientMIDIOut, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	client, err := NewClient(&options)
	if err != nil {
		return nil, err
	}

	return client, nil
}
