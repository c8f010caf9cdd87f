package errors

import (
	"io"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct {
	code int
}

func (e *codedError) Error() string { return "coded" }

func TestAsType(t *testing.T) {
	wrapped := Wrap(&codedError{code: 7}, "outer")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, 7, got.code)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestIsAny(t *testing.T) {
	err := Wrap(io.EOF, "read body")

	assert.True(t, IsAny(err, fs.ErrNotExist, io.EOF))
	assert.False(t, IsAny(err, fs.ErrNotExist))
	assert.False(t, IsAny(nil, io.EOF))
}

func TestCauseKeepsOriginal(t *testing.T) {
	err := Wrapf(io.ErrUnexpectedEOF, "decode %s", "user")

	assert.Equal(t, io.ErrUnexpectedEOF, Cause(err))
	assert.Contains(t, err.Error(), "decode user")
}
