//go:build windows
// +build windows

package midiwindows

import (
	"fmt"
	"unsafe"

	"github.com/leandrodaf/midiout/sdk/contracts"
	"golang.org/x/sys/windows"
)

// Type definition for the MIDI output handle
type HMIDIOUT windows.Handle

// maxPnameLen is the szPname capacity in MIDIOUTCAPSW (MAXPNAMELEN).
const maxPnameLen = 32

// Struct representing MIDI output device capabilities (MIDIOUTCAPSW)
type midiOutCaps struct {
	wMid           uint16
	wPid           uint16
	vDriverVersion uint32
	szPname        [maxPnameLen]uint16
	wTechnology    uint16
	wVoices        uint16
	wNotes         uint16
	wChannelMask   uint16
	dwSupport      uint32
}

// Struct describing a long message buffer registered with the driver (MIDIHDR)
type midiHdr struct {
	lpData          uintptr
	dwBufferLength  uint32
	dwBytesRecorded uint32
	dwUser          uintptr
	dwFlags         uint32
	lpNext          uintptr
	reserved        uintptr
	dwOffset        uint32
	dwReserved      [8]uintptr
}

// Load the winmm.dll library and required functions
var (
	winmm                      = windows.NewLazySystemDLL("winmm.dll")
	procMidiOutGetNumDevs      = winmm.NewProc("midiOutGetNumDevs")
	procMidiOutGetDevCaps      = winmm.NewProc("midiOutGetDevCapsW")
	procMidiOutOpen            = winmm.NewProc("midiOutOpen")
	procMidiOutReset           = winmm.NewProc("midiOutReset")
	procMidiOutClose           = winmm.NewProc("midiOutClose")
	procMidiOutShortMsg        = winmm.NewProc("midiOutShortMsg")
	procMidiOutPrepareHeader   = winmm.NewProc("midiOutPrepareHeader")
	procMidiOutLongMsg         = winmm.NewProc("midiOutLongMsg")
	procMidiOutUnprepareHeader = winmm.NewProc("midiOutUnprepareHeader")
)

// NewMIDIOutClient creates a MIDI output client for Windows.
func NewMIDIOutClient(options *contracts.ClientOptions) (contracts.ClientMIDIOut, error) {
	options.Logger.Info("MIDI output client created for Windows")
	return newClientOut(options, &winmmMidiOut{}), nil
}

// winmmMidiOut drives a single midiOut handle through the winmm procs.
type winmmMidiOut struct {
	handle HMIDIOUT
	header *midiHdr // header of the long message currently prepared
	buffer []byte   // keeps the message bytes reachable until unprepared
}

func (w *winmmMidiOut) NumDevs() int {
	r0, _, _ := procMidiOutGetNumDevs.Call()
	return int(r0)
}

func (w *winmmMidiOut) DevCaps(id int) (contracts.DeviceInfo, error) {
	var caps midiOutCaps
	r1, _, _ := procMidiOutGetDevCaps.Call(
		uintptr(id),
		uintptr(unsafe.Pointer(&caps)),
		unsafe.Sizeof(caps),
	)
	if r1 != 0 {
		return contracts.DeviceInfo{}, fmt.Errorf("midiOutGetDevCaps failed: error %d", r1)
	}

	return contracts.DeviceInfo{
		ID:           id,
		Name:         windows.UTF16ToString(caps.szPname[:]),
		Manufacturer: fmt.Sprintf("MID: %d PID: %d", caps.wMid, caps.wPid),
	}, nil
}

func (w *winmmMidiOut) Open(id int) error {
	var handle HMIDIOUT
	r1, _, _ := procMidiOutOpen.Call(
		uintptr(unsafe.Pointer(&handle)),
		uintptr(id),
		0,
		0,
		0, // CALLBACK_NULL
	)
	if r1 != 0 {
		return fmt.Errorf("midiOutOpen failed: error %d", r1)
	}

	w.handle = handle
	return nil
}

func (w *winmmMidiOut) Reset() error {
	r1, _, _ := procMidiOutReset.Call(uintptr(w.handle))
	if r1 != 0 {
		return fmt.Errorf("midiOutReset failed: error %d", r1)
	}
	return nil
}

func (w *winmmMidiOut) Close() error {
	r1, _, _ := procMidiOutClose.Call(uintptr(w.handle))
	w.handle = 0
	if r1 != 0 {
		return fmt.Errorf("midiOutClose failed: error %d", r1)
	}
	return nil
}

func (w *winmmMidiOut) ShortMsg(msg uint32) error {
	r1, _, _ := procMidiOutShortMsg.Call(uintptr(w.handle), uintptr(msg))
	if r1 != 0 {
		return fmt.Errorf("midiOutShortMsg failed: error %d", r1)
	}
	return nil
}

func (w *winmmMidiOut) PrepareHeader(message []byte) error {
	header := &midiHdr{
		lpData:          uintptr(unsafe.Pointer(&message[0])),
		dwBufferLength:  uint32(len(message)),
		dwBytesRecorded: uint32(len(message)),
	}

	r1, _, _ := procMidiOutPrepareHeader.Call(
		uintptr(w.handle),
		uintptr(unsafe.Pointer(header)),
		unsafe.Sizeof(*header),
	)
	if r1 != 0 {
		return fmt.Errorf("midiOutPrepareHeader failed: error %d", r1)
	}

	w.header = header
	w.buffer = message
	return nil
}

func (w *winmmMidiOut) LongMsg() error {
	if w.header == nil {
		return fmt.Errorf("no MIDI header prepared")
	}

	r1, _, _ := procMidiOutLongMsg.Call(
		uintptr(w.handle),
		uintptr(unsafe.Pointer(w.header)),
		unsafe.Sizeof(*w.header),
	)
	if r1 != 0 {
		return fmt.Errorf("midiOutLongMsg failed: error %d", r1)
	}
	return nil
}

func (w *winmmMidiOut) UnprepareHeader() error {
	if w.header == nil {
		return fmt.Errorf("no MIDI header prepared")
	}

	header := w.header
	w.header = nil
	w.buffer = nil

	r1, _, _ := procMidiOutUnprepareHeader.Call(
		uintptr(w.handle),
		uintptr(unsafe.Pointer(header)),
		unsafe.Sizeof(*header),
	)
	if r1 != 0 {
		return fmt.Errorf("midiOutUnprepareHeader failed: error %d", r1)
	}
	return nil
}
