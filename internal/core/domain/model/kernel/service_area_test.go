package kernel_test

import (
	"strings"
	"testing"

	"logitech/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceArea(t *testing.T) {
	t.Run("should create valid service area", func(t *testing.T) {
		area, err := kernel.NewServiceArea("jakarta-selatan")

		require.NoError(t, err)
		require.NoError(t, area.Validate())
		assert.Equal(t, "jakarta-selatan", area.Name())
	})

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		area, err := kernel.NewServiceArea("  bandung ")

		require.NoError(t, err)
		assert.Equal(t, "bandung", area.Name())
	})

	t.Run("should preserve case", func(t *testing.T) {
		area, err := kernel.NewServiceArea("Jakarta-Selatan")

		require.NoError(t, err)
		assert.Equal(t, "Jakarta-Selatan", area.Name())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := kernel.NewServiceArea("")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "service area")
	})

	t.Run("should fail with whitespace-only name", func(t *testing.T) {
		_, err := kernel.NewServiceArea("   ")

		require.Error(t, err)
	})

	t.Run("should fail with overlong name", func(t *testing.T) {
		_, err := kernel.NewServiceArea(strings.Repeat("a", 101))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum")
	})
}

func TestServiceArea_IsEqual(t *testing.T) {
	t.Run("should match same zone token", func(t *testing.T) {
		a1, _ := kernel.NewServiceArea("surabaya")
		a2, _ := kernel.NewServiceArea("surabaya")

		assert.True(t, a1.IsEqual(a2))
	})

	t.Run("matching is case-sensitive", func(t *testing.T) {
		a1, _ := kernel.NewServiceArea("surabaya")
		a2, _ := kernel.NewServiceArea("Surabaya")

		assert.False(t, a1.IsEqual(a2))
	})
}

func TestServiceArea_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var area kernel.ServiceArea

		err := area.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrServiceAreaIsNotConstructed, err)
	})
}
