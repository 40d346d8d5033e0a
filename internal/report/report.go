// Package report renders a simplification result for people (text) and for
// tools (YAML).
package report

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/pborges/qmc/internal/qmc"
)

// ExpressionLabel prefixes the final line of the text report.
const ExpressionLabel = "SIMPLIFIED EXPRESSION:"

type Config struct {
	// Header lines are written first, one per line.
	Header []string
	// Matrices enables the per-pass coverage tables.
	Matrices bool
}

// MakeText generates the text report for res.
func MakeText(cfg Config, res *qmc.Result) string {
	var buf strings.Builder
	for _, line := range cfg.Header {
		buf.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			buf.WriteByte('\n')
		}
	}
	if cfg.Matrices {
		for _, p := range res.Passes {
			writePass(&buf, p)
		}
	}
	buf.WriteByte('\n')
	fmt.Fprintf(&buf, "%s %s\n", ExpressionLabel, res.Expression)
	return buf.String()
}

// writePass prints one pass as a table: a rule, the minterm header, a rule,
// then one row of cells per implicant.
func writePass(buf *strings.Builder, p qmc.Pass) {
	m := p.Matrix
	rule := strings.Repeat("---", len(m.Minterms))

	buf.WriteByte('\n')
	fmt.Fprintf(buf, "PASS #%d:\n", p.Number)
	buf.WriteString(rule)
	buf.WriteByte('\n')
	for _, v := range m.Minterms {
		fmt.Fprintf(buf, " %-2d", v)
	}
	buf.WriteByte('\n')
	buf.WriteString(rule)
	buf.WriteByte('\n')

	rb := rowBuilder{buf: buf}
	for r := 0; r < m.Rows(); r++ {
		rb.add(m.Row(r))
	}
}

type rowBuilder struct {
	buf *strings.Builder
}

func (r *rowBuilder) add(cells []bool) {
	for _, c := range cells {
		r.buf.WriteByte(' ')
		r.buf.WriteByte('0' + boolToByte(c))
		r.buf.WriteByte(' ')
	}
	r.buf.WriteByte('\n')
}

func boolToByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// Document is the YAML form of a result.
type Document struct {
	Minterms   []int       `yaml:"minterms"`
	Variables  int         `yaml:"variables"`
	Passes     []PassDoc   `yaml:"passes,omitempty"`
	Implicants []Implicant `yaml:"implicants"`
	Selected   []Implicant `yaml:"selected"`
	Expression string      `yaml:"expression"`
	Verified   *bool       `yaml:"verified,omitempty"`
}

type PassDoc struct {
	Pass       int         `yaml:"pass"`
	Implicants []Implicant `yaml:"implicants"`
}

type Implicant struct {
	Pattern  string `yaml:"pattern"`
	Term     string `yaml:"term"`
	Minterms []int  `yaml:"minterms"`
}

// NewDocument converts res. Terms are rendered at the width of the
// selected implicants so they match the expression.
func NewDocument(res *qmc.Result) Document {
	width := res.Width()
	doc := Document{
		Minterms:   res.Minterms,
		Variables:  width,
		Implicants: implicants(res.Implicants, width),
		Selected:   implicants(res.Selected, width),
		Expression: res.Expression,
	}
	for _, p := range res.Passes {
		pd := PassDoc{Pass: p.Number}
		for r := 0; r < p.Matrix.Rows(); r++ {
			var ms []int
			for c, v := range p.Matrix.Minterms {
				if p.Matrix.Cell(r, c) {
					ms = append(ms, v)
				}
			}
			pd.Implicants = append(pd.Implicants, Implicant{
				Pattern:  p.Matrix.Patterns[r],
				Term:     qmc.Term(p.Matrix.Patterns[r], width),
				Minterms: ms,
			})
		}
		doc.Passes = append(doc.Passes, pd)
	}
	return doc
}

func implicants(imps []*qmc.Implicant, width int) []Implicant {
	out := make([]Implicant, 0, len(imps))
	for _, imp := range imps {
		out = append(out, Implicant{
			Pattern:  imp.Pattern,
			Term:     qmc.Term(imp.Pattern, width),
			Minterms: imp.Minterms,
		})
	}
	return out
}

// MakeYAML marshals doc.
func MakeYAML(doc Document) ([]byte, error) {
	return yaml.Marshal(doc)
}
