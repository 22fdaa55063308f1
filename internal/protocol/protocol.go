// Package protocol implements the GoCube BLE message framing and the
// decoding of the notifications the solver front end consumes.
package protocol

import (
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // write
)

// Message types.
const (
	MsgTypeRotation byte = 0x01
	MsgTypeState    byte = 0x02
	MsgTypeBattery  byte = 0x05
)

// Command codes written to the RX characteristic.
const (
	CmdRequestBattery byte = 0x32
	CmdRequestState   byte = 0x33
	CmdResetSolved    byte = 0x35
)

// Frame bytes: [0x2A] [length] [type] [payload...] [checksum] [CR LF].
const (
	framePrefix  byte = 0x2A
	frameSuffix1 byte = 0x0D
	frameSuffix2 byte = 0x0A
)

// Errors.
var (
	ErrInvalidFrame    = errors.New("protocol: invalid message frame")
	ErrInvalidChecksum = errors.New("protocol: invalid checksum")
	ErrMessageTooShort = errors.New("protocol: message too short")
)

// Message is one parsed GoCube notification.
type Message struct {
	Type    byte
	Payload []byte
}

// Parse decodes a raw BLE notification. The length byte counts from the
// type byte through the trailing CRLF; the checksum sums every byte
// before itself.
func Parse(data []byte) (*Message, error) {
	if len(data) < 5 {
		return nil, ErrMessageTooShort
	}
	if data[0] != framePrefix {
		return nil, ErrInvalidFrame
	}
	length := int(data[1])
	if len(data) < 2+length {
		return nil, fmt.Errorf("%w: length byte %d exceeds %d data bytes", ErrInvalidFrame, length, len(data))
	}
	checksumIdx := length - 1
	if checksumIdx < 2 {
		return nil, ErrMessageTooShort
	}
	if data[checksumIdx+1] != frameSuffix1 || data[checksumIdx+2] != frameSuffix2 {
		return nil, ErrInvalidFrame
	}
	var sum byte
	for i := 0; i < checksumIdx; i++ {
		sum += data[i]
	}
	if sum != data[checksumIdx] {
		return nil, fmt.Errorf("%w: expected 0x%02X, got 0x%02X", ErrInvalidChecksum, data[checksumIdx], sum)
	}
	return &Message{Type: data[2], Payload: data[3:checksumIdx]}, nil
}

// BuildCommand frames a payload-less command.
func BuildCommand(cmd byte) []byte {
	length := byte(0x01)
	checksum := framePrefix + length + cmd
	return []byte{framePrefix, length, cmd, checksum, frameSuffix1, frameSuffix2}
}

// Rotation is a single face turn reported by the cube. Face is one of
// the URFDLB letters in the fixed white-up, green-front orientation.
type Rotation struct {
	Face      byte
	Clockwise bool
}

// Notation returns the move in standard notation.
func (r Rotation) Notation() string {
	if r.Clockwise {
		return string(r.Face)
	}
	return string(r.Face) + "'"
}

// Face codes come in color pairs: even is clockwise, odd counter-
// clockwise. Colors map to faces by the standard scheme (white up,
// green front).
var faceByColor = [6]byte{'B', 'F', 'U', 'D', 'R', 'L'}

// DecodeRotation decodes a rotation payload: pairs of bytes, face+
// direction code then center orientation (ignored here).
func DecodeRotation(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("protocol: rotation payload must have even length, got %d", len(payload))
	}
	rotations := make([]Rotation, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		colorIdx := code / 2
		if int(colorIdx) >= len(faceByColor) {
			return nil, fmt.Errorf("protocol: unknown face code 0x%02X", code)
		}
		rotations = append(rotations, Rotation{
			Face:      faceByColor[colorIdx],
			Clockwise: code%2 == 0,
		})
	}
	return rotations, nil
}

// DecodeBattery decodes a battery payload into a 0-100 level.
func DecodeBattery(payload []byte) (int, error) {
	if len(payload) < 1 {
		return 0, ErrMessageTooShort
	}
	return int(payload[0]), nil
}
