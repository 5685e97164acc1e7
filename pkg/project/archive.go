package project

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"

	"github.com/golang/snappy"
)

// Archive format: [magic:4][version:1][dataLen:4][data:N][checksum:4]
// where data is the snappy-compressed JSON record and the checksum is
// CRC32 (IEEE) over the compressed bytes.
var archiveMagic = [4]byte{'V', 'T', 'P', 'J'}

const archiveVersion = 1

// ErrCorruptArchive is returned when the magic, framing, or checksum of
// a saved project does not verify.
var ErrCorruptArchive = errors.New("corrupt project archive")

// Write serializes the record and writes the compressed archive to w.
func Write(w io.Writer, rec Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode project: %w", err)
	}
	compressed := snappy.Encode(nil, raw)

	if _, err := w.Write(archiveMagic[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte{archiveVersion}); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(compressed))); err != nil {
		return err
	}
	if _, err := w.Write(compressed); err != nil {
		return err
	}
	return binary.Write(w, binary.BigEndian, crc32.ChecksumIEEE(compressed))
}

// Read parses a compressed archive back into its record, verifying the
// frame and checksum before touching the payload.
func Read(r io.Reader) (Record, error) {
	var rec Record

	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return rec, fmt.Errorf("%w: short header", ErrCorruptArchive)
	}
	if magic != archiveMagic {
		return rec, fmt.Errorf("%w: bad magic", ErrCorruptArchive)
	}
	var version [1]byte
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return rec, fmt.Errorf("%w: short header", ErrCorruptArchive)
	}
	if version[0] != archiveVersion {
		return rec, fmt.Errorf("%w: unknown archive version %d", ErrCorruptArchive, version[0])
	}

	var dataLen uint32
	if err := binary.Read(r, binary.BigEndian, &dataLen); err != nil {
		return rec, fmt.Errorf("%w: short frame", ErrCorruptArchive)
	}
	compressed := make([]byte, dataLen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return rec, fmt.Errorf("%w: truncated payload", ErrCorruptArchive)
	}
	var sum uint32
	if err := binary.Read(r, binary.BigEndian, &sum); err != nil {
		return rec, fmt.Errorf("%w: missing checksum", ErrCorruptArchive)
	}
	if sum != crc32.ChecksumIEEE(compressed) {
		return rec, fmt.Errorf("%w: checksum mismatch", ErrCorruptArchive)
	}

	raw, err := snappy.Decode(nil, compressed)
	if err != nil {
		return rec, fmt.Errorf("%w: %v", ErrCorruptArchive, err)
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("decode project: %w", err)
	}
	return rec, nil
}

// SaveFile validates and writes a project archive to path.
func SaveFile(path string, p *Project) error {
	rec := Encode(p)
	if err := ValidateRecord(rec); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	defer f.Close()
	if err := Write(f, rec); err != nil {
		return err
	}
	return f.Sync()
}

// LoadFile reads, validates, and decodes a project archive from path.
func LoadFile(path string) (*Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load project: %w", err)
	}
	defer f.Close()
	rec, err := Read(f)
	if err != nil {
		return nil, err
	}
	if err := ValidateRecord(rec); err != nil {
		return nil, err
	}
	return Decode(rec)
}
