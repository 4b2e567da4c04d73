package netplay

import (
	"encoding/binary"
	"fmt"
)

// Wire message types. Every message is one type byte followed by a
// fixed-size payload, except MsgBoard whose payload is a board snapshot
// as produced by board.EncodeSnapshot.
type MsgType byte

const (
	MsgSeed  MsgType = 0x01 // 8-byte big-endian RNG seed, host to joiner
	MsgTap   MsgType = 0x02 // two 2-byte big-endian cell coordinates
	MsgBoard MsgType = 0x03 // full board snapshot, for resync
)

// Message is a decoded wire message. Only the fields for its type are set.
type Message struct {
	Type  MsgType
	Seed  uint64
	X, Y  int
	Board []byte
}

// EncodeMessage serializes a message for the wire.
func EncodeMessage(m Message) ([]byte, error) {
	switch m.Type {
	case MsgSeed:
		buf := make([]byte, 9)
		buf[0] = byte(MsgSeed)
		binary.BigEndian.PutUint64(buf[1:], m.Seed)
		return buf, nil
	case MsgTap:
		if m.X < 0 || m.X > 0xFFFF || m.Y < 0 || m.Y > 0xFFFF {
			return nil, fmt.Errorf("netplay: tap (%d,%d) out of wire range", m.X, m.Y)
		}
		buf := make([]byte, 5)
		buf[0] = byte(MsgTap)
		binary.BigEndian.PutUint16(buf[1:], uint16(m.X))
		binary.BigEndian.PutUint16(buf[3:], uint16(m.Y))
		return buf, nil
	case MsgBoard:
		if len(m.Board) == 0 {
			return nil, fmt.Errorf("netplay: board message without snapshot")
		}
		buf := make([]byte, 1+len(m.Board))
		buf[0] = byte(MsgBoard)
		copy(buf[1:], m.Board)
		return buf, nil
	default:
		return nil, fmt.Errorf("netplay: unknown message type 0x%02x", byte(m.Type))
	}
}

// DecodeMessage parses a wire message, rejecting truncated or oversized
// payloads so a misbehaving peer can never corrupt the simulation.
func DecodeMessage(data []byte) (Message, error) {
	if len(data) == 0 {
		return Message{}, fmt.Errorf("netplay: empty message")
	}
	switch MsgType(data[0]) {
	case MsgSeed:
		if len(data) != 9 {
			return Message{}, fmt.Errorf("netplay: seed message is %d bytes, want 9", len(data))
		}
		return Message{
			Type: MsgSeed,
			Seed: binary.BigEndian.Uint64(data[1:]),
		}, nil
	case MsgTap:
		if len(data) != 5 {
			return Message{}, fmt.Errorf("netplay: tap message is %d bytes, want 5", len(data))
		}
		return Message{
			Type: MsgTap,
			X:    int(binary.BigEndian.Uint16(data[1:])),
			Y:    int(binary.BigEndian.Uint16(data[3:])),
		}, nil
	case MsgBoard:
		if len(data) < 2 {
			return Message{}, fmt.Errorf("netplay: board message without snapshot")
		}
		board := make([]byte, len(data)-1)
		copy(board, data[1:])
		return Message{Type: MsgBoard, Board: board}, nil
	default:
		return Message{}, fmt.Errorf("netplay: unknown message type 0x%02x", data[0])
	}
}
