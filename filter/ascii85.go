package filter

import (
	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
)

// EncodeASCII85 wraps upstream to produce its ASCII85Decode encoding:
// groups of four bytes become five base-85 characters (or the single
// 'z' abbreviation for an all-zero group), with a final partial group
// emitting n+1 characters, followed by the "~>" EOD.
func EncodeASCII85(upstream Source) Source {
	return &ascii85Encoder{upstream: upstream}
}

type ascii85Encoder struct {
	upstream Source
	pending  []byte
	done     bool
}

func (e *ascii85Encoder) Next() (byte, bool, error) {
	for len(e.pending) == 0 {
		if e.done {
			return 0, false, nil
		}
		var buf [4]byte
		n := 0
		for n < 4 {
			b, ok, err := e.upstream.Next()
			if err != nil {
				return 0, false, err
			}
			if !ok {
				break
			}
			buf[n] = b
			n++
		}
		switch {
		case n == 0:
			e.pending = append(e.pending, '~', '>')
			e.done = true
		case n == 4:
			v := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
			if v == 0 {
				e.pending = append(e.pending, 'z')
			} else {
				digits := encode85(v)
				e.pending = append(e.pending, digits[:]...)
			}
		default:
			digits := encode85(uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3]))
			e.pending = append(e.pending, digits[:n+1]...)
			e.pending = append(e.pending, '~', '>')
			e.done = true
		}
	}
	out := e.pending[0]
	e.pending = e.pending[1:]
	return out, true, nil
}

func encode85(v uint32) [5]byte {
	var out [5]byte
	for i := 4; i >= 0; i-- {
		out[i] = byte(v%85) + '!'
		v /= 85
	}
	return out
}

// DecodeASCII85 wraps upstream (an ASCII85Decode-encoded stream) to
// produce its decoded bytes, recognizing the 'z' abbreviation and
// stopping cleanly at the "~>" EOD.
func DecodeASCII85(upstream Source) Source {
	return &ascii85Decoder{upstream: upstream}
}

type ascii85Decoder struct {
	upstream Source
	pending  []byte
	done     bool
}

func (d *ascii85Decoder) Next() (byte, bool, error) {
	for len(d.pending) == 0 {
		if d.done {
			return 0, false, nil
		}
		if err := d.fillGroup(); err != nil {
			return 0, false, err
		}
	}
	out := d.pending[0]
	d.pending = d.pending[1:]
	return out, true, nil
}

// fillGroup reads and decodes one group of up to five base-85
// characters into d.pending, or sets d.done on EOD.
func (d *ascii85Decoder) fillGroup() error {
	var group [5]byte
	k := 0
	for k < 5 {
		b, ok, err := nextNonWhitespace(d.upstream)
		if err != nil {
			return err
		}
		if !ok {
			return pdferr.NewMissingEOD("ASCII85Decode stream ended mid-group")
		}
		if b == 'z' && k == 0 {
			plog.Filter.Printf("ascii85: z abbreviation\n")
			d.pending = append(d.pending, 0, 0, 0, 0)
			return nil
		}
		if b == '~' {
			return d.finishOnTilde(group, k)
		}
		if b < '!' || b > 'u' {
			return pdferr.NewFilter(pdferr.ASCII85Decode, b, "byte outside '!'..'u'")
		}
		group[k] = b
		k++
	}
	var v uint32
	for i := 0; i < 5; i++ {
		v = v*85 + uint32(group[i]-'!')
	}
	d.pending = append(d.pending, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	return nil
}

func (d *ascii85Decoder) finishOnTilde(group [5]byte, k int) error {
	b2, ok, err := nextNonWhitespace(d.upstream)
	if err != nil {
		return err
	}
	if !ok || b2 != '>' {
		return pdferr.NewMissingEOD("ASCII85Decode missing > after ~")
	}
	d.done = true
	if k == 0 {
		return nil
	}
	v := uint32(0)
	for i := 0; i < 5; i++ {
		digit := byte('u' - '!')
		if i < k {
			digit = group[i] - '!'
		}
		v = v*85 + uint32(digit)
	}
	var out [4]byte
	out[0], out[1], out[2], out[3] = byte(v>>24), byte(v>>16), byte(v>>8), byte(v)
	d.pending = append(d.pending, out[:k-1]...)
	return nil
}
