package errors_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scholarmark/scholarmark/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	err := errors.NewNotFoundError("content file", "publications.yaml")

	assert.EqualError(t, err, "content file publications.yaml not found")
	assert.True(t, errors.IsNotFound(err))
	assert.False(t, errors.IsValidationError(err))
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("title", "", "must not be empty")

	assert.EqualError(t, err, "validation failed for field title: must not be empty")
	assert.True(t, errors.IsValidationError(err))
}

func TestParseErrorWrapsCause(t *testing.T) {
	cause := errors.New("unexpected node")
	err := errors.WrapParse("yaml", "profile.yaml", cause)

	assert.ErrorContains(t, err, "profile.yaml")
	assert.True(t, errors.Is(err, cause))

	var parseErr *errors.ParseError
	assert.True(t, errors.As(err, &parseErr))
	assert.Equal(t, "yaml", parseErr.Format)
}

func TestIOErrorWrapsCause(t *testing.T) {
	err := errors.WrapIO("read", "cv.yaml", fs.ErrNotExist)

	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var ioErr *errors.IOError
	assert.True(t, errors.As(err, &ioErr))
	assert.Equal(t, "read", ioErr.Operation)
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, errors.WrapIO("read", "x", nil))
	assert.NoError(t, errors.WrapParse("yaml", "x", nil))
	assert.NoError(t, errors.WrapResource("load", "profile", "x", nil))
	assert.NoError(t, errors.WrapValidation("field", nil))
}

func TestResourceErrorMessage(t *testing.T) {
	err := errors.NewResourceError("load", "publications", "publications.yaml", errors.New("boom"))
	assert.EqualError(t, err, "failed to load publications publications.yaml: boom")
}
