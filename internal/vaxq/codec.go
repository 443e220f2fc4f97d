package vaxq

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"vaxq-go/internal/model"
)

// The flat-file format: UTF-8 text, one record per line, seven comma-joined
// fields in wire order. No header, no quoting; field values are comma-free by
// construction (the field validators accept no commas).

// LoadFrom reads records from r and adds each valid line to the collection.
// Malformed lines (wrong field count or a failing field validator) are logged
// and skipped; they never abort the batch. Each successfully loaded line goes
// through Add and therefore pushes a history state.
// Returns the number of records added and the number of lines skipped.
func (c *Collection) LoadFrom(r io.Reader) (added, skipped int, err error) {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != len(model.FieldNames) {
			c.logger.Warn("skipping malformed line", "line", lineno, "fields", len(fields))
			skipped++
			continue
		}
		req, verr := model.NewFromFields(fields)
		if verr != nil {
			c.logger.Warn("skipping invalid record", "line", lineno, "error", verr)
			skipped++
			continue
		}
		c.Add(req)
		added++
	}
	if serr := sc.Err(); serr != nil {
		return added, skipped, fmt.Errorf("reading records: %w", serr)
	}
	return added, skipped, nil
}

// StoreTo writes every record to w, one comma-joined line per record, in the
// collection's current order.
func (c *Collection) StoreTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, r := range c.requests {
		if _, err := bw.WriteString(strings.Join(r.Fields(), ",")); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing records: %w", err)
	}
	return nil
}
