package manicotti

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfrastructureError(t *testing.T) {
	underlying := errors.New("boom")
	err := NewInfrastructureError("load_font", underlying)

	assert.Equal(t, "manicotti: load_font: boom", err.Error())
	assert.ErrorIs(t, err, underlying)
	assert.True(t, IsInfrastructureError(err))
	assert.True(t, IsInfrastructureError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsInfrastructureError(underlying))
}

func TestInfrastructureErrorWithoutCause(t *testing.T) {
	err := NewInfrastructureError("init_video", nil)
	assert.Equal(t, "manicotti: init_video", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(ErrCancelled))
	assert.True(t, IsCancelled(fmt.Errorf("show: %w", ErrCancelled)))
	assert.False(t, IsCancelled(ErrInterrupted))
	assert.False(t, IsCancelled(nil))
}
