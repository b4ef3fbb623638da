package rcore

import (
	"testing"

	"github.com/gekko3d/rcore/platform"
	"github.com/gekko3d/rcore/platform/headless"
	"github.com/stretchr/testify/require"
)

// newTestCore opens an 800x450 window on a headless platform.
func newTestCore(t *testing.T, flags ConfigFlags, monitors ...platform.Monitor) (*Core, *headless.Platform) {
	t.Helper()
	p := headless.New(monitors...)
	c := NewCore(p).SetLogger(NewNopLogger()).SetConfigFlags(flags)
	require.NoError(t, c.InitWindow(800, 450, "test"))
	return c, p
}

// frame runs one poll with the given events queued.
func frame(c *Core, p *headless.Platform, events ...headless.Event) {
	p.Push(events...)
	c.PollInputEvents()
}

func press(key Key) headless.Event {
	return headless.Key{Key: int(key), Action: platform.Press}
}

func release(key Key) headless.Event {
	return headless.Key{Key: int(key), Action: platform.Release}
}
