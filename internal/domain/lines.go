package domain

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	lineSep = ";"
	lineKV  = ":"
)

// EncodeLines renders order lines as "itemId:quantity" pairs joined by ";",
// the on-disk form of the orders dataset's lines field.
func EncodeLines(lines []OrderLine) string {
	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		parts = append(parts, l.ItemID+lineKV+strconv.Itoa(l.Quantity))
	}
	return strings.Join(parts, lineSep)
}

// ParseLines is the inverse of EncodeLines. Unit prices are not stored
// per line, so parsed lines carry a zero UnitPrice; the order total is the
// only price record an order keeps.
func ParseLines(encoded string) ([]OrderLine, error) {
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty lines field", ErrMalformedRecord)
	}
	parts := strings.Split(encoded, lineSep)
	lines := make([]OrderLine, 0, len(parts))
	for _, p := range parts {
		kv := strings.SplitN(p, lineKV, 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("%w: bad line %q", ErrMalformedRecord, p)
		}
		qty, err := strconv.Atoi(kv[1])
		if err != nil || qty <= 0 {
			return nil, fmt.Errorf("%w: bad quantity in line %q", ErrMalformedRecord, p)
		}
		lines = append(lines, OrderLine{ItemID: kv[0], Quantity: qty})
	}
	return lines, nil
}
