package testutil

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// Table is one "PASS #n" block of a text report.
type Table struct {
	Pass     int
	Minterms []int
	Rows     [][]bool
}

// Report is the structure recovered from a text report.
type Report struct {
	Header     []string
	Tables     []Table
	Expression string
	// HasExpression is set when the SIMPLIFIED EXPRESSION line was found.
	HasExpression bool
}

// ParseReport reads a text report back so tests can compare tables and the
// expression without depending on spacing.
func ParseReport(data []byte) (Report, error) {
	var r Report
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	var cur *Table
	rules := 0
	inTables := false
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "PASS #"):
			v := strings.TrimSuffix(strings.TrimPrefix(trimmed, "PASS #"), ":")
			n, err := strconv.Atoi(v)
			if err != nil {
				return r, fmt.Errorf("invalid pass line: %q", line)
			}
			r.Tables = append(r.Tables, Table{Pass: n})
			cur = &r.Tables[len(r.Tables)-1]
			rules = 0
			inTables = true
		case strings.HasPrefix(trimmed, "SIMPLIFIED EXPRESSION:"):
			r.Expression = strings.TrimSpace(strings.TrimPrefix(trimmed, "SIMPLIFIED EXPRESSION:"))
			r.HasExpression = true
			cur = nil
			inTables = true
		case trimmed == "":
			cur = nil
		case cur != nil && strings.Trim(trimmed, "-") == "":
			rules++
		case cur != nil && rules == 1:
			for _, f := range strings.Fields(trimmed) {
				m, err := strconv.Atoi(f)
				if err != nil {
					return r, fmt.Errorf("invalid minterm header: %q", line)
				}
				cur.Minterms = append(cur.Minterms, m)
			}
		case cur != nil && rules == 2:
			var row []bool
			for _, f := range strings.Fields(trimmed) {
				switch f {
				case "1":
					row = append(row, true)
				case "0":
					row = append(row, false)
				default:
					return r, fmt.Errorf("invalid cell %q", f)
				}
			}
			if len(row) != len(cur.Minterms) {
				return r, fmt.Errorf("row has %d cells, header has %d", len(row), len(cur.Minterms))
			}
			cur.Rows = append(cur.Rows, row)
		case !inTables:
			r.Header = append(r.Header, line)
		default:
			return r, fmt.Errorf("unexpected line: %q", line)
		}
	}
	if err := scanner.Err(); err != nil {
		return r, err
	}
	return r, nil
}
