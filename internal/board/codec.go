package board

import (
	"encoding/binary"
	"fmt"
)

// Snapshot wire format: 2-byte big-endian width, 2-byte big-endian height,
// then width*height tile masks row by row. Markings are not carried; the
// receiver re-resolves, which is cheaper than trusting remote markings.

const snapshotHeaderLen = 4

// EncodeSnapshot serializes the tile masks for out-of-band resync.
func (b *Board) EncodeSnapshot() []byte {
	buf := make([]byte, snapshotHeaderLen+len(b.tiles))
	binary.BigEndian.PutUint16(buf[0:2], uint16(b.width))
	binary.BigEndian.PutUint16(buf[2:4], uint16(b.height))
	for i, t := range b.tiles {
		buf[snapshotHeaderLen+i] = uint8(t)
	}
	return buf
}

// ApplySnapshot replaces the tile contents with a previously encoded
// snapshot. Malformed input is rejected with an error and leaves the
// board untouched; the local state stays authoritative. Markings are
// cleared so the caller re-resolves against the new contents.
func (b *Board) ApplySnapshot(data []byte) error {
	if len(data) < snapshotHeaderLen {
		return fmt.Errorf("board: snapshot too short: %d bytes", len(data))
	}
	w := int(binary.BigEndian.Uint16(data[0:2]))
	h := int(binary.BigEndian.Uint16(data[2:4]))
	if w != b.width || h != b.height {
		return fmt.Errorf("board: snapshot dimensions %dx%d do not match board %dx%d", w, h, b.width, b.height)
	}
	masks := data[snapshotHeaderLen:]
	if len(masks) != w*h {
		return fmt.Errorf("board: snapshot payload has %d cells, want %d", len(masks), w*h)
	}
	for _, m := range masks {
		if m > 0x0F {
			return fmt.Errorf("board: snapshot contains invalid mask %#x", m)
		}
	}

	for i, m := range masks {
		b.tiles[i] = Tile(m)
		b.markings[i] = MarkNone
	}
	return nil
}
