// Package deckfile saves decks to disk and loads them back. The format
// is a small length-prefixed binary layout:
//
//	4 bytes  magic "DKHD"
//	4 bytes  card count, big-endian uint32
//	per card:
//	  2 bytes  name length, big-endian uint16
//	  n bytes  card name
//
// Failures carry sentinel categories so callers can tell a filesystem
// problem from a bad payload: ErrEncode, ErrWrite, ErrRead, and
// ErrDecode.
package deckfile

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"

	"deckhand/models"
)

var (
	// ErrEncode wraps decks the layout cannot represent.
	ErrEncode = errors.New("encode deck file")
	// ErrWrite wraps failures to write a deck file.
	ErrWrite = errors.New("write deck file")
	// ErrRead wraps failures to read a deck file from disk.
	ErrRead = errors.New("read deck file")
	// ErrDecode wraps failures to decode a deck file's contents.
	ErrDecode = errors.New("decode deck file")
)

const (
	magic      = "DKHD"
	headerSize = len(magic) + 4
)

// Encode renders cards into the deck file layout. A card whose name
// does not fit the 16-bit length prefix is rejected with ErrEncode
// rather than written truncated.
func Encode(cards []models.Card) ([]byte, error) {
	size := headerSize
	for _, c := range cards {
		size += 2 + len(c)
	}

	buf := make([]byte, 0, size)
	buf = append(buf, magic...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(cards)))
	for i, c := range cards {
		if len(c) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: oversized card name at card %d", ErrEncode, i)
		}
		buf = binary.BigEndian.AppendUint16(buf, uint16(len(c)))
		buf = append(buf, c...)
	}
	return buf, nil
}

// Decode parses data produced by Encode. Any structural problem is
// reported through ErrDecode.
func Decode(data []byte) ([]models.Card, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: file too short for header", ErrDecode)
	}
	if string(data[:len(magic)]) != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrDecode, data[:len(magic)])
	}

	count := binary.BigEndian.Uint32(data[len(magic):headerSize])
	rest := data[headerSize:]

	// Every card takes at least its two length bytes, so a count past
	// this bound cannot be honest.
	if uint64(count) > uint64(len(rest))/2 {
		return nil, fmt.Errorf("%w: card count %d exceeds file size", ErrDecode, count)
	}

	cards := make([]models.Card, 0, count)
	for i := uint32(0); i < count; i++ {
		if len(rest) < 2 {
			return nil, fmt.Errorf("%w: truncated card length at card %d", ErrDecode, i)
		}
		n := int(binary.BigEndian.Uint16(rest[:2]))
		rest = rest[2:]
		if len(rest) < n {
			return nil, fmt.Errorf("%w: truncated card name at card %d", ErrDecode, i)
		}
		cards = append(cards, models.Card(rest[:n]))
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after last card", ErrDecode, len(rest))
	}
	return cards, nil
}

// Save writes cards to path, replacing any existing file. A deck that
// cannot be encoded fails with ErrEncode and leaves the file untouched.
func Save(path string, cards []models.Card) error {
	data, err := Encode(cards)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Load reads a deck back from path. A missing or unreadable file comes
// back as ErrRead; a file that cannot be parsed comes back as
// ErrDecode. The underlying cause stays in the chain, so
// errors.Is(err, os.ErrNotExist) still works.
func Load(path string) ([]models.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	cards, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}
