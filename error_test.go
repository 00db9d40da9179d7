package urldoc_test

import (
	"errors"
	"fmt"
	"testing"

	urldoc "github.com/msaum/url-doc-to-markdown"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := urldoc.Errorf(urldoc.EINVALID, "malformed URL %q", "not-a-url")

	assert.Equal(t, urldoc.EINVALID, urldoc.ErrorCode(err))
	assert.Equal(t, "malformed URL \"not-a-url\"", urldoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, urldoc.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	inner := urldoc.Errorf(urldoc.EUPSTREAM, "HTTP 503")
	wrapped := fmt.Errorf("fetching page: %w", inner)

	assert.Equal(t, urldoc.EUPSTREAM, urldoc.ErrorCode(wrapped))
	assert.Equal(t, "HTTP 503", urldoc.ErrorMessage(wrapped))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, urldoc.EINTERNAL, urldoc.ErrorCode(errors.New("boom")))
	assert.Equal(t, "Internal error.", urldoc.ErrorMessage(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, urldoc.ErrorMessage(nil))
}
