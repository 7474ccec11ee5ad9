package registry_test

import (
	"sync"
	"testing"

	"github.com/arthur-debert/autoheader/pkg/errors"
	"github.com/arthur-debert/autoheader/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := registry.New[string]()

	require.NoError(t, reg.Register("bash", "#"))
	require.NoError(t, reg.Register("go", "//"))

	marker, err := reg.Get("bash")
	require.NoError(t, err)
	assert.Equal(t, "#", marker)

	assert.True(t, reg.Has("go"))
	assert.False(t, reg.Has("cobol"))
	assert.Equal(t, 2, reg.Count())
	assert.Equal(t, []string{"bash", "go"}, reg.List())
}

func TestRegistry_Errors(t *testing.T) {
	reg := registry.New[int]()

	t.Run("empty_name", func(t *testing.T) {
		err := reg.Register("", 1)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("duplicate", func(t *testing.T) {
		require.NoError(t, reg.Register("yaml", 1))
		err := reg.Register("yaml", 2)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := reg.Get("missing")
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := registry.New[int]()
	require.NoError(t, reg.Register("shared", 42))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := reg.Get("shared")
			assert.NoError(t, err)
			assert.Equal(t, 42, v)
			_ = reg.List()
			_ = reg.Has("shared")
		}()
	}
	wg.Wait()
}

func TestMustRegister_PanicsOnDuplicate(t *testing.T) {
	reg := registry.New[string]()
	registry.MustRegister(reg, "python", "#")
	assert.Panics(t, func() {
		registry.MustRegister(reg, "python", "#")
	})
}
