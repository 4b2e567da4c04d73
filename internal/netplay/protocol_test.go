package netplay

import (
	"bytes"
	"testing"
)

func TestProtocolRoundTrip(t *testing.T) {
	cases := map[string]Message{
		"seed":      {Type: MsgSeed, Seed: 0xDEADBEEF12345678},
		"zero seed": {Type: MsgSeed, Seed: 0},
		"tap":       {Type: MsgTap, X: 11, Y: 9},
		"tap origin": {Type: MsgTap, X: 0, Y: 0},
		"board":     {Type: MsgBoard, Board: []byte{0, 3, 0, 1, 5, 10, 15}},
	}

	for name, msg := range cases {
		data, err := EncodeMessage(msg)
		if err != nil {
			t.Errorf("%s: encode: %v", name, err)
			continue
		}
		got, err := DecodeMessage(data)
		if err != nil {
			t.Errorf("%s: decode: %v", name, err)
			continue
		}
		if got.Type != msg.Type || got.Seed != msg.Seed || got.X != msg.X || got.Y != msg.Y {
			t.Errorf("%s: round trip = %+v, want %+v", name, got, msg)
		}
		if !bytes.Equal(got.Board, msg.Board) {
			t.Errorf("%s: board round trip = %v, want %v", name, got.Board, msg.Board)
		}
	}
}

func TestEncodeRejectsInvalid(t *testing.T) {
	if _, err := EncodeMessage(Message{Type: MsgTap, X: -1, Y: 0}); err == nil {
		t.Error("negative tap coordinate should not encode")
	}
	if _, err := EncodeMessage(Message{Type: MsgTap, X: 0, Y: 1 << 16}); err == nil {
		t.Error("oversized tap coordinate should not encode")
	}
	if _, err := EncodeMessage(Message{Type: MsgBoard}); err == nil {
		t.Error("board message without snapshot should not encode")
	}
	if _, err := EncodeMessage(Message{Type: 0x7F}); err == nil {
		t.Error("unknown type should not encode")
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	malformed := map[string][]byte{
		"empty":          {},
		"unknown type":   {0x7F, 1, 2},
		"truncated seed": {byte(MsgSeed), 1, 2, 3},
		"oversized seed": {byte(MsgSeed), 1, 2, 3, 4, 5, 6, 7, 8, 9},
		"truncated tap":  {byte(MsgTap), 0, 1},
		"bare board":     {byte(MsgBoard)},
	}

	for name, data := range malformed {
		if _, err := DecodeMessage(data); err == nil {
			t.Errorf("%s: expected decode error", name)
		}
	}
}
