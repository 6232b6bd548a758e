//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"workshop-admin-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesMarkThroughWrap(t *testing.T) {
	sentinel := errs.New("operation failed")
	cause := errors.New("connection refused")

	err := errs.Mark(errs.Wrap(cause, "calling upstream"), sentinel)

	assert.True(t, errs.Is(err, sentinel), "mark must be visible to errs.Is")
	assert.True(t, errs.Is(err, cause), "cause stays in the wrap chain")
	assert.False(t, errors.Is(err, sentinel), "marks live outside the Unwrap chain")
}

func TestMarkNilReturnsSentinel(t *testing.T) {
	sentinel := errs.New("not found")

	err := errs.Mark(nil, sentinel)

	assert.True(t, errs.Is(err, sentinel))
}
