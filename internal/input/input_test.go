package input

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("3 1\t0  2")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		in     string
		reason Reason
		token  string
	}{
		{"", ReasonEmpty, ""},
		{"   ", ReasonEmpty, ""},
		{"1 1", ReasonDuplicate, "1"},
		{"-1", ReasonNegative, "-1"},
		{"a b", ReasonSyntax, "a"},
		{"1 2.5", ReasonSyntax, "2.5"},
		{"4294967296", ReasonSyntax, "4294967296"},
		{"2 -3 2", ReasonNegative, "-3"},
		{"0 0 x", ReasonDuplicate, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.reason, verr.Reason)
			assert.Equal(t, tt.token, verr.Token)
		})
	}
}

func TestValidationError_Message(t *testing.T) {
	_, err := Parse("")
	assert.EqualError(t, err, "no input")
	_, err = Parse("7 7")
	assert.EqualError(t, err, `input cannot contain the same minterm twice: "7"`)
}

func TestIsValidation_Wrapped(t *testing.T) {
	_, err := Parse("-2")
	assert.True(t, IsValidation(errors.Wrap(err, "minterms")))
	assert.False(t, IsValidation(errors.New("boom")))
}

func TestReadLine(t *testing.T) {
	line, err := ReadLine(strings.NewReader("1 3\r\n5 7\n"))
	require.NoError(t, err)
	assert.Equal(t, "1 3", line)

	line, err = ReadLine(strings.NewReader("0 1"))
	require.NoError(t, err)
	assert.Equal(t, "0 1", line)

	line, err = ReadLine(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "", line)
}
