// Package pathcodec serializes a recorded fix sequence to the byte
// representation stored in the trips table, and back.
//
// Wire format, little-endian throughout:
//
//	offset 0: magic "DLP1" (4 bytes)
//	offset 4: fix count (uint32)
//	offset 8: count × (latitude float64, longitude float64)
//
// Latitude and longitude round-trip losslessly as IEEE-754 doubles. The magic
// header exists so Decode can reject foreign bytes as malformed instead of
// silently misinterpreting them.
package pathcodec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/pkordes/drivelog/internal/domain"
)

var magic = [4]byte{'D', 'L', 'P', '1'}

const (
	headerLen = 8  // magic + count
	fixLen    = 16 // two float64s
)

// Encode serializes path into the persisted byte representation.
// It never fails; an empty or nil path encodes to a valid header-only value.
func Encode(path []domain.Fix) []byte {
	buf := make([]byte, headerLen+fixLen*len(path))
	copy(buf, magic[:])
	binary.LittleEndian.PutUint32(buf[4:], uint32(len(path)))
	for i, f := range path {
		off := headerLen + fixLen*i
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(f.Latitude))
		binary.LittleEndian.PutUint64(buf[off+8:], math.Float64bits(f.Longitude))
	}
	return buf
}

// Decode parses bytes produced by Encode back into a fix sequence, preserving
// order. A zero-fix value decodes to nil. Any deviation from the wire format
// returns an error wrapping domain.ErrMalformedPath.
func Decode(b []byte) ([]domain.Fix, error) {
	if len(b) < headerLen {
		return nil, fmt.Errorf("pathcodec.Decode: %d bytes is shorter than the header: %w", len(b), domain.ErrMalformedPath)
	}
	if [4]byte(b[:4]) != magic {
		return nil, fmt.Errorf("pathcodec.Decode: bad magic: %w", domain.ErrMalformedPath)
	}
	count := binary.LittleEndian.Uint32(b[4:])
	if want := headerLen + fixLen*int(count); len(b) != want {
		return nil, fmt.Errorf("pathcodec.Decode: %d bytes for %d fixes, want %d: %w", len(b), count, want, domain.ErrMalformedPath)
	}
	if count == 0 {
		return nil, nil
	}
	path := make([]domain.Fix, count)
	for i := range path {
		off := headerLen + fixLen*i
		path[i] = domain.Fix{
			Latitude:  math.Float64frombits(binary.LittleEndian.Uint64(b[off:])),
			Longitude: math.Float64frombits(binary.LittleEndian.Uint64(b[off+8:])),
		}
	}
	return path, nil
}
