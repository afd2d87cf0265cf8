package base64_test

import (
	"testing"

	"hotel/shared/base64"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "png", input: "data:image/png;base64,iVBORw0KGgo=", expected: "image/png"},
		{name: "jpeg", input: "data:image/jpeg;base64,/9j/4AAQ", expected: "image/jpeg"},
		{name: "webp", input: "data:image/webp;base64,UklGRg==", expected: "image/webp"},
		{name: "missing marker", input: "data:image/png,iVBORw0KGgo=", expected: ""},
		{name: "plain string", input: "room-101.png", expected: ""},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base64.GetContentType(tt.input))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("valid data uri", func(t *testing.T) {
		contentType, data, err := base64.Decode("data:text/plain;base64,SGVsbG8gV29ybGQ=")

		require.NoError(t, err)
		assert.Equal(t, "text/plain", contentType)
		assert.Equal(t, []byte("Hello World"), data)
	})

	t.Run("not a data uri", func(t *testing.T) {
		_, _, err := base64.Decode("SGVsbG8gV29ybGQ=")

		assert.ErrorIs(t, err, base64.ErrInvalidDataURI)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		_, _, err := base64.Decode("data:image/png;base64,!!!")

		assert.ErrorIs(t, err, base64.ErrInvalidDataURI)
	})
}
