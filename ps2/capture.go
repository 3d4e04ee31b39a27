package ps2

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrHeader is returned when a capture header lacks a clock or data column.
var ErrHeader = errors.New("capture header needs clk and data columns")

// ReadCapture turns a logic analyzer CSV export into clock edges. Each row
// is one sample. Lines starting with ';' or '#' are comments. A header row
// naming "clk"/"clock" and "data" selects those columns; otherwise the first
// two columns are clock and data. The clock idles high.
func ReadCapture(r io.Reader) ([]Edge, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	cr.LazyQuotes = true

	clkCol, dataCol := 0, 1
	clk := true
	first := true
	var edges []Edge
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return edges, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read capture: %w", err)
		}
		if len(rec) == 0 || isComment(rec[0]) {
			continue
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			c, d, ok, err := header(rec)
			if err != nil {
				return nil, err
			}
			if ok {
				clkCol, dataCol = c, d
				continue
			}
		}
		if len(rec) <= clkCol || len(rec) <= dataCol {
			return nil, fmt.Errorf("capture line %d: want at least %d columns", line, max(clkCol, dataCol)+1)
		}
		c, err := level(rec[clkCol])
		if err != nil {
			return nil, fmt.Errorf("capture line %d clock: %w", line, err)
		}
		d, err := level(rec[dataCol])
		if err != nil {
			return nil, fmt.Errorf("capture line %d data: %w", line, err)
		}
		if c == clk {
			continue
		}
		clk = c
		if c {
			edges = append(edges, Edge{Phase: Rising, Data: d})
		} else {
			edges = append(edges, Edge{Phase: Falling, Data: d})
		}
	}
}

// WriteCapture writes edges as a two-column clk,data CSV that ReadCapture
// accepts. Each edge is preceded by a sample holding the data level with the
// clock unchanged, the way a device sets data up before clocking it.
func WriteCapture(w io.Writer, edges []Edge) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"clk", "data"}); err != nil {
		return err
	}
	clk := true
	for _, e := range edges {
		next := e.Phase == Rising
		if err := cw.Write([]string{bit(clk), bit(e.Data)}); err != nil {
			return err
		}
		if err := cw.Write([]string{bit(next), bit(e.Data)}); err != nil {
			return err
		}
		clk = next
	}
	cw.Flush()
	return cw.Error()
}

func isComment(field string) bool {
	return strings.HasPrefix(field, ";") || strings.HasPrefix(field, "#")
}

func header(rec []string) (clk, data int, ok bool, err error) {
	if _, err := level(rec[0]); err == nil {
		return 0, 0, false, nil
	}
	clk, data = -1, -1
	for i, name := range rec {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "clk", "clock":
			clk = i
		case "data", "dat":
			data = i
		}
	}
	if clk < 0 || data < 0 {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrHeader, strings.Join(rec, ","))
	}
	return clk, data, true, nil
}

func level(s string) (bool, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
