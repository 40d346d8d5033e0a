// Package input reads and validates the minterm list given to the simplifier.
package input

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Reason classifies a validation failure.
type Reason int

const (
	ReasonEmpty Reason = iota + 1
	ReasonSyntax
	ReasonNegative
	ReasonDuplicate
)

func (r Reason) String() string {
	switch r {
	case ReasonEmpty:
		return "empty"
	case ReasonSyntax:
		return "syntax"
	case ReasonNegative:
		return "negative"
	case ReasonDuplicate:
		return "duplicate"
	}
	return fmt.Sprintf("Reason(%d)", int(r))
}

// ValidationError is returned for the first problem found in the input.
type ValidationError struct {
	Reason Reason
	Token  string
	Msg    string
}

func (e *ValidationError) Error() string {
	if e.Token == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Token)
}

// IsValidation reports whether err was caused by a *ValidationError.
func IsValidation(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// ReadLine returns the first line of r without its line terminator.
// A missing trailing newline is not an error.
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(err, "reading minterms")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Parse splits s on whitespace and validates every token as a distinct,
// non-negative 32-bit integer. The minterms are returned ascending.
func Parse(s string) ([]int, error) {
	return ParseFields(strings.Fields(s))
}

// ParseFields validates already split tokens. See Parse.
func ParseFields(tokens []string) ([]int, error) {
	if len(tokens) == 0 {
		return nil, &ValidationError{Reason: ReasonEmpty, Msg: "no input"}
	}
	out := make([]int, 0, len(tokens))
	seen := make(map[int]bool, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, &ValidationError{Reason: ReasonSyntax, Token: tok, Msg: "input is not an integer"}
		}
		m := int(v)
		if m < 0 {
			return nil, &ValidationError{Reason: ReasonNegative, Token: tok, Msg: "input cannot be less than zero"}
		}
		if seen[m] {
			return nil, &ValidationError{Reason: ReasonDuplicate, Token: tok, Msg: "input cannot contain the same minterm twice"}
		}
		seen[m] = true
		out = append(out, m)
	}
	sort.Ints(out)
	return out, nil
}
