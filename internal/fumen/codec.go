package fumen

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
)

// fieldScheme selects how one page's field is packed, recorded as a
// leading byte per page so Decode never needs to guess.
type fieldScheme byte

const (
	schemeRLE fieldScheme = iota
	schemeRaw
)

// Encode renders a Grid as a single URL-safe opaque string, always
// using run-length encoding for each page's field.
// Each page's field is packed as (color byte + run-length-minus-one
// varint) pairs before the whole byte stream is base64-url encoded: a hand-rolled
// binary format rather than a generic serialization library, since this
// wire format is domain-specific and small.
func Encode(g Grid) (string, error) {
	var buf bytes.Buffer
	putUvarint(&buf, uint64(len(g)))
	for _, p := range g {
		encodePage(&buf, p, schemeRLE)
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// EncodeOptimized is the `fumen optimize` codec path: for every page it
// tries both the run-length and literal packings and keeps whichever
// produces fewer bytes, recording the choice per page.
func EncodeOptimized(g Grid) (string, error) {
	var buf bytes.Buffer
	putUvarint(&buf, uint64(len(g)))
	for _, p := range g {
		rle := encodePageBytes(p, schemeRLE)
		raw := encodePageBytes(p, schemeRaw)
		if len(raw) < len(rle) {
			buf.Write(raw)
		} else {
			buf.Write(rle)
		}
	}
	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode parses a string produced by Encode or EncodeOptimized back into
// a Grid.
func Decode(s string) (Grid, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("fumen: invalid base64: %w", err)
	}
	r := bytes.NewReader(raw)

	pageCount, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, fmt.Errorf("fumen: reading page count: %w", err)
	}

	g := make(Grid, 0, pageCount)
	for i := uint64(0); i < pageCount; i++ {
		p, err := decodePage(r)
		if err != nil {
			return nil, fmt.Errorf("fumen: page %d: %w", i, err)
		}
		g = append(g, p)
	}
	return g, nil
}

func encodePageBytes(p Page, scheme fieldScheme) []byte {
	var buf bytes.Buffer
	encodePage(&buf, p, scheme)
	return buf.Bytes()
}

func encodePage(buf *bytes.Buffer, p Page, scheme fieldScheme) {
	buf.WriteByte(byte(scheme))
	putUvarint(buf, uint64(p.W))
	putUvarint(buf, uint64(p.H))
	switch scheme {
	case schemeRaw:
		for _, c := range p.Field {
			buf.WriteByte(byte(c))
		}
	default:
		encodeFieldRLE(buf, p.Field)
	}
	comment := []byte(p.Comment)
	putUvarint(buf, uint64(len(comment)))
	buf.Write(comment)
}

func decodePage(r *bytes.Reader) (Page, error) {
	schemeByte, err := r.ReadByte()
	if err != nil {
		return Page{}, fmt.Errorf("reading scheme: %w", err)
	}
	w, err := binary.ReadUvarint(r)
	if err != nil {
		return Page{}, fmt.Errorf("reading width: %w", err)
	}
	h, err := binary.ReadUvarint(r)
	if err != nil {
		return Page{}, fmt.Errorf("reading height: %w", err)
	}
	n := int(w) * int(h)

	var field []CellColor
	switch fieldScheme(schemeByte) {
	case schemeRaw:
		field = make([]CellColor, n)
		for i := range field {
			c, err := r.ReadByte()
			if err != nil {
				return Page{}, fmt.Errorf("reading raw cell %d: %w", i, err)
			}
			field[i] = CellColor(c)
		}
	default:
		field, err = decodeFieldRLE(r, n)
		if err != nil {
			return Page{}, err
		}
	}

	commentLen, err := binary.ReadUvarint(r)
	if err != nil {
		return Page{}, fmt.Errorf("reading comment length: %w", err)
	}
	comment := make([]byte, commentLen)
	if commentLen > 0 {
		if _, err := io.ReadFull(r, comment); err != nil {
			return Page{}, fmt.Errorf("reading comment: %w", err)
		}
	}
	return Page{W: int(w), H: int(h), Field: field, Comment: string(comment)}, nil
}

// encodeFieldRLE writes field as a run of (color, repeat-1) pairs.
func encodeFieldRLE(buf *bytes.Buffer, field []CellColor) {
	i := 0
	for i < len(field) {
		c := field[i]
		run := 1
		for i+run < len(field) && field[i+run] == c {
			run++
		}
		buf.WriteByte(byte(c))
		putUvarint(buf, uint64(run-1))
		i += run
	}
}

// decodeFieldRLE reads exactly n cells' worth of (color, repeat-1) pairs.
func decodeFieldRLE(r *bytes.Reader, n int) ([]CellColor, error) {
	field := make([]CellColor, 0, n)
	for len(field) < n {
		c, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("reading color: %w", err)
		}
		runMinusOne, err := binary.ReadUvarint(r)
		if err != nil {
			return nil, fmt.Errorf("reading run length: %w", err)
		}
		for k := uint64(0); k <= runMinusOne; k++ {
			field = append(field, CellColor(c))
		}
	}
	if len(field) != n {
		return nil, fmt.Errorf("field length mismatch: got %d, want %d", len(field), n)
	}
	return field, nil
}

func putUvarint(buf *bytes.Buffer, v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	buf.Write(tmp[:n])
}
