package shutdown

import (
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello-world/internal/logger"
)

func TestShutdownReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NewRecorder())

	var order []string
	m.Register("app", Func(func() { order = append(order, "app") }))
	m.Register("window", Func(func() { order = append(order, "window") }))
	m.Register("icon", Func(func() { order = append(order, "icon") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"icon", "window", "app"}, order)

	select {
	case <-m.done:
	default:
		t.Fatal("done channel should be closed")
	}
	assert.Error(t, m.ctx.Err())
}

func TestListenInvokesCallbackOnSignal(t *testing.T) {
	m := NewManager(logger.NewRecorder())
	defer m.Shutdown()

	got := make(chan os.Signal, 1)
	m.Listen(func(sig os.Signal) { got <- sig })

	require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

	select {
	case sig := <-got:
		assert.Equal(t, syscall.SIGTERM, sig)
	case <-time.After(2 * time.Second):
		t.Fatal("signal callback not invoked")
	}
}

func TestListenStopsAfterShutdown(t *testing.T) {
	m := NewManager(logger.NewRecorder())

	called := make(chan struct{}, 1)
	m.Listen(func(os.Signal) { called <- struct{}{} })
	m.Shutdown()

	select {
	case <-called:
		t.Fatal("callback should not run without a signal")
	case <-time.After(50 * time.Millisecond):
	}
}
