//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/codependence/internal/domain/entities"
)

func TestParseTrackedPackage(t *testing.T) {
	t.Parallel()

	t.Run("should read a bare name as a lookup entry", func(t *testing.T) {
		t.Parallel()

		// when
		pkg := entities.ParseTrackedPackage("  react ")

		// then
		require.NoError(t, pkg.Validate())
		assert.Equal(t, "react", pkg.Name)
		assert.False(t, pkg.Pinned)
		assert.Equal(t, "react", pkg.String())
	})

	t.Run("should read a JSON pair as a pinned entry", func(t *testing.T) {
		t.Parallel()

		// when
		pkg := entities.ParseTrackedPackage(`{"lodash":"4.17.21"}`)

		// then
		require.NoError(t, pkg.Validate())
		assert.Equal(t, entities.NewPinnedPackage("lodash", "4.17.21"), pkg)
		assert.Equal(t, "lodash@4.17.21", pkg.String())
	})

	t.Run("should mark malformed JSON as invalid", func(t *testing.T) {
		t.Parallel()

		// when
		pkg := entities.ParseTrackedPackage(`{"lodash":`)

		// then
		err := pkg.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrInvalidTrackedEntry)
		assert.Contains(t, pkg.String(), "<invalid:")
	})

	t.Run("should mark a multi-key object as invalid", func(t *testing.T) {
		t.Parallel()

		// when
		pkg := entities.ParseTrackedPackage(`{"a":"1.0.0","b":"2.0.0"}`)

		// then
		assert.ErrorIs(t, pkg.Validate(), entities.ErrInvalidTrackedEntry)
	})

	t.Run("should mark an empty name as invalid", func(t *testing.T) {
		t.Parallel()

		// when
		pkg := entities.ParseTrackedPackage("   ")

		// then
		assert.ErrorIs(t, pkg.Validate(), entities.ErrInvalidTrackedEntry)
	})
}

func TestTrackedPackagesFromValues(t *testing.T) {
	t.Parallel()

	t.Run("should convert strings, mappings and keep unsupported shapes as invalid", func(t *testing.T) {
		t.Parallel()

		// given
		values := []any{
			"react",
			map[string]any{"lodash": "4.17.21"},
			map[string]any{"numeric": float64(3)},
			[]any{"nested"},
			map[string]any{"broken": []any{"1.0.0"}},
		}

		// when
		packages := entities.TrackedPackagesFromValues(values)

		// then
		require.Len(t, packages, 5)
		assert.Equal(t, entities.NewTrackedPackage("react"), packages[0])
		assert.Equal(t, entities.NewPinnedPackage("lodash", "4.17.21"), packages[1])
		assert.Equal(t, entities.NewPinnedPackage("numeric", "3"), packages[2])
		assert.ErrorIs(t, packages[3].Validate(), entities.ErrInvalidTrackedEntry)
		assert.ErrorIs(t, packages[4].Validate(), entities.ErrInvalidTrackedEntry)
	})
}
