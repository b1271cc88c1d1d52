// file: internals/helpers/apperr_test.go
package helper

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(NewNotFound("student not found"))
	assert.True(t, ok)
	assert.Equal(t, ErrKindNotFound, kind)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestIsKindThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load student: %w", NewConflict("stale fee details"))
	assert.True(t, IsKind(wrapped, ErrKindConflict))
	assert.False(t, IsKind(wrapped, ErrKindNotFound))
}

func TestNewDependencyKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDependency(cause)
	assert.True(t, IsKind(err, ErrKindDependency))
	assert.ErrorIs(t, err, cause)
}
