package ual

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"moff.io/ual-tokenpocket/pkg/errors"
)

func TestErrorMessageAndUnwrap(t *testing.T) {
	cause := errors.New("No result returned")
	err := NewError("Unable to get the current account during login", ErrorTypeLogin, "TokenPocket", cause)

	assert.Equal(t,
		"TokenPocket (Login): Unable to get the current account during login: No result returned",
		err.Error())
	assert.True(t, errors.Is(err, cause))

	bare := NewError("not ready", ErrorTypeInitialization, "TokenPocket", nil)
	assert.Nil(t, bare.Cause)
	assert.Equal(t, "TokenPocket (Initialization): not ready", bare.Error())
}

func TestIsType(t *testing.T) {
	err := NewError("login", ErrorTypeLogin, "TokenPocket", errors.New("boom"))
	wrapped := fmt.Errorf("host: %w", err)

	assert.True(t, IsType(err, ErrorTypeLogin))
	assert.True(t, IsType(wrapped, ErrorTypeLogin))
	assert.False(t, IsType(wrapped, ErrorTypeInitialization))
	assert.False(t, IsType(errors.New("plain"), ErrorTypeLogin))
	assert.False(t, IsType(nil, ErrorTypeLogin))
}

func TestErrorClassification(t *testing.T) {
	var classified errors.Classified
	err := fmt.Errorf("host: %w", NewError("autologin", ErrorTypeInitialization, "TokenPocket", errors.New("boom")))

	assert.True(t, errors.As(err, &classified))
	source, kind := classified.Classification()
	assert.Equal(t, "TokenPocket", source)
	assert.Equal(t, "Initialization", kind)
}
