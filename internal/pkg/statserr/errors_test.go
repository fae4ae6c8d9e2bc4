package statserr

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(CodeMalformedRecord, false, "malformed record")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestIs(t *testing.T) {
	err := errors.Wrap(ErrMalformedRecord.Msg("session %s has no id", "x"), "decode")
	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestTransient(t *testing.T) {
	assert.Nil(t, Transient(nil, "noop"))

	err := Transient(context.DeadlineExceeded, "commit stats batch")
	assert.True(t, errors.Is(err, ErrTransientStorage))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.True(t, IsRetryable(err))

	assert.Same(t, ErrNotFound, Transient(ErrNotFound, "get owned game"))
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, IsRetryable(nil))
	assert.False(t, IsRetryable(ErrMalformedRecord.Msg("bad")))
	assert.True(t, IsRetryable(errors.New("connection reset")))
}
