package main

import (
	"time"

	"github.com/leandrodaf/midiout/internal/logger"
	"github.com/leandrodaf/midiout/sdk/contracts"
	"github.com/leandrodaf/midiout/sdk/midi"
)

func main() {
	log := logger.NewZapLogger()

	client, err := midi.NewMIDIOutClient(
		contracts.WithLogger(log),
		contracts.WithLogLevel(contracts.InfoLevel),
		contracts.WithMIDIEnabled(true),
		contracts.WithDeviceName(contracts.DeviceAuto),
	)
	if err != nil {
		log.Error("Failed to initialize MIDI output client", log.Field().Error("error", err))
		return
	}

	// Enumerates the available devices and opens the default one.
	if err = client.Init(); err != nil {
		log.Error("Failed to start MIDI subsystem", log.Field().Error("error", err))
		return
	}
	defer client.Deinit()

	for _, device := range client.ListDevices() {
		log.Info("MIDI output device",
			log.Field().Int("deviceID", device.ID),
			log.Field().String("name", device.Name),
			log.Field().String("manufacturer", device.Manufacturer),
		)
	}

	// Middle C for half a second.
	if err = client.Send([]byte{contracts.NoteOn, 60, 100}); err != nil {
		log.Error("Failed to send note on", log.Field().Error("error", err))
		return
	}
	time.Sleep(500 * time.Millisecond)
	if err = client.Send([]byte{contracts.NoteOff, 60, 0}); err != nil {
		log.Error("Failed to send note off", log.Field().Error("error", err))
		return
	}

	// Identity request, a system exclusive message longer than three bytes.
	if err = client.Send([]byte{0xF0, 0x7E, 0x7F, 0x06, 0x01, 0xF7}); err != nil {
		log.Error("Failed to send identity request", log.Field().Error("error", err))
	}
}
