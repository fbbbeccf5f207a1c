package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("string falls back when unset", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("CPN_TEST_UNSET", "fallback"))
	})

	t.Run("string reads the variable", func(t *testing.T) {
		t.Setenv("CPN_TEST_STRING", "set")
		assert.Equal(t, "set", GetEnvString("CPN_TEST_STRING", "fallback"))
	})

	t.Run("int falls back on malformed values", func(t *testing.T) {
		t.Setenv("CPN_TEST_INT", "not-a-number")
		assert.Equal(t, 42, GetEnvInt("CPN_TEST_INT", 42))
	})

	t.Run("int parses", func(t *testing.T) {
		t.Setenv("CPN_TEST_INT", "7")
		assert.Equal(t, 7, GetEnvInt("CPN_TEST_INT", 42))
	})

	t.Run("float parses", func(t *testing.T) {
		t.Setenv("CPN_TEST_FLOAT", "2.5")
		assert.Equal(t, 2.5, GetEnvFloat("CPN_TEST_FLOAT", 1))
	})
}
