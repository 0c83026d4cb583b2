package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackEN(t *testing.T) {
	assert.Equal(t, "Medical Mask", FallbackEN("Masker Medis", "Medical Mask"))
	assert.Equal(t, "Masker Medis", FallbackEN("Masker Medis", ""))
	assert.Equal(t, "Masker Medis", FallbackEN("Masker Medis", "   "))
	assert.Equal(t, "", FallbackEN("", ""))
}
