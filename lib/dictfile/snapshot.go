// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictfile

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/bureau-foundation/bearcode/lib/codec"
	"github.com/bureau-foundation/bearcode/lib/dictionary"
)

// Snapshot header layout: 4-byte magic, 1-byte compression tag, 4-byte
// big-endian uncompressed body length, then the (possibly compressed)
// CBOR body.
var snapshotMagic = [4]byte{'B', 'D', 'I', 'C'}

const snapshotHeaderSize = len(snapshotMagic) + 1 + 4

// snapshotVersion is bumped when the body schema changes.
const snapshotVersion = 1

// maxSnapshotBody bounds the declared body size so a corrupt header
// cannot trigger a huge allocation.
const maxSnapshotBody = 256 << 20

// Compression identifies the snapshot body compression. The values are
// written into snapshot headers and must not change.
type Compression uint8

const (
	CompressionNone Compression = 0
	CompressionLZ4  Compression = 1
	CompressionZstd Compression = 2
)

// String returns the compression name.
func (compression Compression) String() string {
	switch compression {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(compression))
	}
}

// ParseCompression parses a compression name.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, lz4, or zstd)", name)
	}
}

// Snapshot is a compiled dictionary.
type Snapshot struct {
	Version int `cbor:"version"`

	// Source is the fingerprint of the file the snapshot was compiled
	// from.
	Source Hash `cbor:"source"`

	Entries []dictionary.Entry `cbor:"entries"`

	// Compression is read from the header; it is not part of the body.
	Compression Compression `cbor:"-"`
}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("dictfile: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("dictfile: zstd decoder initialization failed: " + err.Error())
	}
}

// EncodeSnapshot compiles entries into snapshot bytes. When the chosen
// compression does not shrink the body, the body is stored
// uncompressed and the header says so.
func EncodeSnapshot(entries []dictionary.Entry, source Hash, compression Compression) ([]byte, error) {
	body, err := codec.Marshal(Snapshot{Version: snapshotVersion, Source: source, Entries: entries})
	if err != nil {
		return nil, fmt.Errorf("encoding snapshot: %w", err)
	}
	if len(body) > maxSnapshotBody {
		return nil, fmt.Errorf("snapshot body is %d bytes, limit is %d", len(body), maxSnapshotBody)
	}

	payload := body
	switch compression {
	case CompressionNone:
	case CompressionLZ4:
		destination := make([]byte, lz4.CompressBlockBound(len(body)))
		written, err := lz4.CompressBlock(body, destination, nil)
		if err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		payload = destination[:written]
	case CompressionZstd:
		payload = zstdEncoder.EncodeAll(body, nil)
	default:
		return nil, fmt.Errorf("unsupported compression %v", compression)
	}
	if compression != CompressionNone && (len(payload) == 0 || len(payload) >= len(body)) {
		compression = CompressionNone
		payload = body
	}

	output := make([]byte, snapshotHeaderSize, snapshotHeaderSize+len(payload))
	copy(output, snapshotMagic[:])
	output[len(snapshotMagic)] = byte(compression)
	binary.BigEndian.PutUint32(output[len(snapshotMagic)+1:], uint32(len(body)))
	return append(output, payload...), nil
}

// DecodeSnapshot parses snapshot bytes. Every failure wraps
// ErrBadSnapshot.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	if len(data) < snapshotHeaderSize || [4]byte(data[:4]) != snapshotMagic {
		return nil, fmt.Errorf("%w: missing header", ErrBadSnapshot)
	}
	compression := Compression(data[len(snapshotMagic)])
	bodySize := int(binary.BigEndian.Uint32(data[len(snapshotMagic)+1:]))
	if bodySize > maxSnapshotBody {
		return nil, fmt.Errorf("%w: declared body of %d bytes exceeds limit", ErrBadSnapshot, bodySize)
	}
	payload := data[snapshotHeaderSize:]

	var body []byte
	switch compression {
	case CompressionNone:
		body = payload
	case CompressionLZ4:
		body = make([]byte, bodySize)
		read, err := lz4.UncompressBlock(payload, body)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrBadSnapshot, err)
		}
		body = body[:read]
	case CompressionZstd:
		var err error
		body, err = zstdDecoder.DecodeAll(payload, make([]byte, 0, bodySize))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %v", ErrBadSnapshot, err)
		}
	default:
		return nil, fmt.Errorf("%w: compression tag %d", ErrBadSnapshot, uint8(compression))
	}
	if len(body) != bodySize {
		return nil, fmt.Errorf("%w: body is %d bytes, header says %d", ErrBadSnapshot, len(body), bodySize)
	}

	var snapshot Snapshot
	if err := codec.Unmarshal(body, &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	if snapshot.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadSnapshot, snapshot.Version, snapshotVersion)
	}
	snapshot.Compression = compression
	return &snapshot, nil
}
