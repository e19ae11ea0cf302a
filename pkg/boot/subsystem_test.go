package boot_test

import (
	"errors"
	"testing"

	"github.com/kjkrol/sdlskel/internal/platform"
	"github.com/kjkrol/sdlskel/internal/platform/platformtest"
	"github.com/kjkrol/sdlskel/pkg/boot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire_WrapsPlatformError(t *testing.T) {
	rec := platformtest.New()
	rec.InitErr = "dummy driver missing"

	sub, err := boot.Acquire(rec)

	assert.Nil(t, sub)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boot.ErrSubsystemInit))
	assert.Contains(t, err.Error(), "dummy driver missing")
	assert.Equal(t, boot.ExitFailure, boot.ExitCode(err))
}

func TestSubsystem_ReleaseOnce(t *testing.T) {
	rec := platformtest.New()
	sub, err := boot.Acquire(rec)
	require.NoError(t, err)

	sub.Release()
	sub.Release()

	assert.Equal(t, 1, rec.Count(platformtest.CallShutdown))
}

func TestWindow_CloseOnce(t *testing.T) {
	rec := platformtest.New()
	sub, err := boot.Acquire(rec)
	require.NoError(t, err)
	conf := platform.DefaultWindowConfig()

	win, err := sub.OpenWindow(conf)
	require.NoError(t, err)
	assert.Equal(t, conf, win.Config())

	win.Close()
	win.Close()
	sub.Release()

	assert.Equal(t, []string{
		platformtest.CallInit,
		platformtest.CallCreateWindow,
		platformtest.CallDestroyWindow,
		platformtest.CallShutdown,
	}, rec.Calls)
}

func TestOpenWindow_WrapsPlatformError(t *testing.T) {
	rec := platformtest.New()
	rec.CreateErr = "bad pixel format"
	sub, err := boot.Acquire(rec)
	require.NoError(t, err)
	defer sub.Release()

	win, err := sub.OpenWindow(platform.DefaultWindowConfig())

	assert.Nil(t, win)
	assert.ErrorIs(t, err, boot.ErrWindowCreate)
	assert.Contains(t, err.Error(), "bad pixel format")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, boot.ExitSuccess, boot.ExitCode(nil))
	assert.Equal(t, boot.ExitFailure, boot.ExitCode(boot.ErrWindowCreate))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", boot.Running.String())
	assert.Equal(t, "unknown", boot.State(42).String())
}
