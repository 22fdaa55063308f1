package protocol

import (
	"errors"
	"testing"
)

// frame builds a valid message around a type byte and payload.
func frame(msgType byte, payload []byte) []byte {
	length := byte(len(payload) + 4)
	data := []byte{framePrefix, length, msgType}
	data = append(data, payload...)
	var sum byte
	for _, b := range data {
		sum += b
	}
	return append(data, sum, frameSuffix1, frameSuffix2)
}

func TestParseValidFrame(t *testing.T) {
	msg, err := Parse(frame(MsgTypeRotation, []byte{0x04, 0x00}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if msg.Type != MsgTypeRotation {
		t.Errorf("type = 0x%02X", msg.Type)
	}
	if len(msg.Payload) != 2 {
		t.Errorf("payload length = %d", len(msg.Payload))
	}
}

func TestParseRejectsBadChecksum(t *testing.T) {
	data := frame(MsgTypeRotation, []byte{0x04, 0x00})
	data[3] ^= 0xff
	if _, err := Parse(data); !errors.Is(err, ErrInvalidChecksum) {
		t.Errorf("expected checksum error, got %v", err)
	}
}

func TestParseRejectsShortOrUnframed(t *testing.T) {
	if _, err := Parse([]byte{0x2A, 0x01}); !errors.Is(err, ErrMessageTooShort) {
		t.Errorf("short message: got %v", err)
	}
	data := frame(MsgTypeBattery, []byte{0x5A})
	data[0] = 0x00
	if _, err := Parse(data); !errors.Is(err, ErrInvalidFrame) {
		t.Errorf("bad prefix: got %v", err)
	}
}

func TestBuildCommand(t *testing.T) {
	data := BuildCommand(CmdRequestBattery)
	if len(data) != 6 {
		t.Fatalf("command frame length = %d", len(data))
	}
	if data[0] != framePrefix || data[1] != 0x01 || data[2] != CmdRequestBattery {
		t.Errorf("unexpected command frame % X", data)
	}
	if data[3] != framePrefix+0x01+CmdRequestBattery {
		t.Errorf("bad checksum 0x%02X", data[3])
	}
	if data[4] != frameSuffix1 || data[5] != frameSuffix2 {
		t.Errorf("bad suffix % X", data[4:])
	}
}

func TestDecodeRotation(t *testing.T) {
	// white clockwise (0x04), green counter-clockwise (0x03)
	rots, err := DecodeRotation([]byte{0x04, 0x00, 0x03, 0x00})
	if err != nil {
		t.Fatalf("DecodeRotation: %v", err)
	}
	if len(rots) != 2 {
		t.Fatalf("got %d rotations", len(rots))
	}
	if rots[0].Notation() != "U" {
		t.Errorf("rotation 0 = %q, want U", rots[0].Notation())
	}
	if rots[1].Notation() != "F'" {
		t.Errorf("rotation 1 = %q, want F'", rots[1].Notation())
	}
}

func TestDecodeRotationRejectsOddPayload(t *testing.T) {
	if _, err := DecodeRotation([]byte{0x04}); err == nil {
		t.Error("odd payload should fail")
	}
}

func TestDecodeBattery(t *testing.T) {
	level, err := DecodeBattery([]byte{0x55})
	if err != nil {
		t.Fatalf("DecodeBattery: %v", err)
	}
	if level != 0x55 {
		t.Errorf("level = %d", level)
	}
}
