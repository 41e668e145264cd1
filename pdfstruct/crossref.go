package pdfstruct

import (
	"fmt"

	"github.com/Thibaud379/pdfobj/internal/plog"
	"github.com/Thibaud379/pdfobj/pdferr"
	"github.com/Thibaud379/pdfobj/scanner"
)

// EntryKind distinguishes a free slot from an in-use object in a
// cross-reference entry.
type EntryKind uint8

const (
	EntryFree EntryKind = iota
	EntryInUse
)

// Entry is one fixed-width 18-byte cross-reference line.
type Entry struct {
	Offset     uint64
	Generation uint16
	Kind       EntryKind
}

// Subsection is a header line "<first> <count>" plus exactly count
// entries, numbered starting at First.
type Subsection struct {
	First   uint32
	Entries []Entry
}

// Section begins with the "xref" keyword and holds one or more
// subsections.
type Section struct {
	Subsections []Subsection
}

// Table is the whole cross-reference table: one or more sections.
type Table struct {
	Sections []Section
}

// ParseTable repeatedly parses "xref" sections until the input no
// longer starts (after whitespace) with the xref keyword.
func ParseTable(b []byte) (Table, []byte, error) {
	var table Table
	rest := b
	for {
		stripped := scanner.StripWhitespace(rest)
		if next, ok := matchLiteral(stripped, "xref"); ok {
			section, next, err := parseSection(next)
			if err != nil {
				return Table{}, nil, err
			}
			table.Sections = append(table.Sections, section)
			rest = next
			continue
		}
		break
	}
	if len(table.Sections) == 0 {
		return Table{}, nil, pdferr.New(pdferr.Parse, "expected xref keyword")
	}
	plog.Struct.Printf("xref table: %d sections\n", len(table.Sections))
	return table, rest, nil
}

func parseSection(b []byte) (Section, []byte, error) {
	var sec Section
	rest := b
	for {
		stripped := scanner.StripWhitespace(rest)
		first, count, next, ok := tryParseSubsectionHeader(stripped)
		if !ok {
			rest = stripped
			break
		}
		entries := make([]Entry, 0, count)
		for i := uint32(0); i < count; i++ {
			next = scanner.StripWhitespace(next)
			entry, after, err := parseEntryLine(next)
			if err != nil {
				return Section{}, nil, pdferr.Propagate(fmt.Sprintf("xref entry %d of subsection starting at %d", i, first), err)
			}
			entries = append(entries, entry)
			next = after
		}
		sec.Subsections = append(sec.Subsections, Subsection{First: first, Entries: entries})
		rest = next
	}
	if len(sec.Subsections) == 0 {
		return Section{}, nil, pdferr.New(pdferr.Parse, "xref section has no subsections")
	}
	return sec, rest, nil
}

// tryParseSubsectionHeader recognizes a "<first> <count>" line: two
// decimal integers separated by whitespace. It does not consume
// trailing whitespace or the line terminator beyond the two numbers.
func tryParseSubsectionHeader(b []byte) (first, count uint32, rest []byte, ok bool) {
	first, r1, err := parseDecimal(b)
	if err != nil {
		return 0, 0, nil, false
	}
	if len(r1) == 0 || !scanner.IsWhitespace(r1[0]) {
		return 0, 0, nil, false
	}
	r1 = scanner.StripWhitespace(r1)
	count, r2, err := parseDecimal(r1)
	if err != nil {
		return 0, 0, nil, false
	}
	return first, count, r2, true
}

func parseDecimal(b []byte) (uint32, []byte, error) {
	i := 0
	for i < len(b) && !scanner.IsWhitespace(b[i]) {
		i++
	}
	token := b[:i]
	if len(token) == 0 {
		return 0, nil, pdferr.New(pdferr.Parse, "empty decimal token")
	}
	var v uint32
	for _, c := range token {
		if c < '0' || c > '9' {
			return 0, nil, pdferr.Newf(pdferr.Parse, "invalid decimal token %q", token)
		}
		v = v*10 + uint32(c-'0')
	}
	return v, b[i:], nil
}

// parseEntryLine reads the fixed 18-byte entry (offset, space,
// generation, space, f/n), leaving any line-terminator bytes in the
// returned suffix for the caller to strip.
func parseEntryLine(b []byte) (Entry, []byte, error) {
	if len(b) < 18 {
		return Entry{}, nil, pdferr.New(pdferr.Parse, "xref entry shorter than 18 bytes")
	}
	line := b[:18]
	offset, err := parseFixedDecimal(line[0:10])
	if err != nil {
		return Entry{}, nil, pdferr.Propagate("xref entry offset", err)
	}
	if line[10] != ' ' {
		return Entry{}, nil, pdferr.New(pdferr.Parse, "xref entry missing separator after offset")
	}
	gen, err := parseFixedDecimal(line[11:16])
	if err != nil {
		return Entry{}, nil, pdferr.Propagate("xref entry generation", err)
	}
	if line[16] != ' ' {
		return Entry{}, nil, pdferr.New(pdferr.Parse, "xref entry missing separator after generation")
	}
	var kind EntryKind
	switch line[17] {
	case 'n':
		kind = EntryInUse
	case 'f':
		kind = EntryFree
	default:
		return Entry{}, nil, pdferr.Newf(pdferr.Parse, "xref entry type byte %q, want f or n", line[17])
	}
	return Entry{Offset: offset, Generation: uint16(gen), Kind: kind}, b[18:], nil
}

func parseFixedDecimal(field []byte) (uint64, error) {
	var v uint64
	for _, c := range field {
		if c < '0' || c > '9' {
			return 0, pdferr.Newf(pdferr.Parse, "invalid digit in fixed-width field %q", field)
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}

func matchLiteral(b []byte, kw string) ([]byte, bool) {
	n := len(kw)
	if len(b) < n || string(b[:n]) != kw {
		return nil, false
	}
	return b[n:], true
}

// EmitEntry renders e as its fixed 18-byte line (without a line
// terminator): 10-digit offset, ' ', 5-digit generation, ' ', f/n.
func EmitEntry(e Entry) []byte {
	out := make([]byte, 18)
	putFixedDecimal(out[0:10], e.Offset)
	out[10] = ' '
	putFixedDecimal(out[11:16], uint64(e.Generation))
	out[16] = ' '
	if e.Kind == EntryInUse {
		out[17] = 'n'
	} else {
		out[17] = 'f'
	}
	return out
}

func putFixedDecimal(field []byte, v uint64) {
	for i := len(field) - 1; i >= 0; i-- {
		field[i] = byte('0' + v%10)
		v /= 10
	}
}

// EmitSubsection renders a subsection header line "<first> <count>\n"
// followed by each entry line with a "\r\n" terminator, as required
// for fixed 20-byte (18 + 2) entry lines in classic xref tables.
func EmitSubsection(s Subsection) []byte {
	var out []byte
	out = append(out, []byte(uintToDecimal(s.First))...)
	out = append(out, ' ')
	out = append(out, []byte(uintToDecimal(uint64(len(s.Entries))))...)
	out = append(out, '\n')
	for _, e := range s.Entries {
		out = append(out, EmitEntry(e)...)
		out = append(out, '\r', '\n')
	}
	return out
}

func uintToDecimal(v uint64) string {
	if v == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
