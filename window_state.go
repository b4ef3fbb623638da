package rcore

import "github.com/go-gl/mathgl/mgl32"

const (
	MaxDroppedFiles   = 100
	MaxFilepathLength = 4096
)

type WindowState struct {
	Title string
	Flags ConfigFlags

	Ready            bool
	Fullscreen       bool
	ShouldClose      bool
	ResizedLastFrame bool
	UsingFbo         bool
	EventWaiting     bool

	Position         Point
	PreviousPosition Point

	Display        Size
	Screen         Size
	PreviousScreen Size
	CurrentFbo     Size
	Render         Size
	RenderOffset   Point

	ScreenMin Size
	ScreenMax Size

	ScreenScale mgl32.Mat4

	droppedFiles []string
}

func newWindowState() WindowState {
	return WindowState{ScreenScale: mgl32.Ident4()}
}

// setDroppedFiles replaces any unconsumed batch with paths: at most one
// batch is kept, at most MaxDroppedFiles entries, each truncated.
func (w *WindowState) setDroppedFiles(paths []string) {
	n := len(paths)
	if n > MaxDroppedFiles {
		n = MaxDroppedFiles
	}
	batch := make([]string, 0, n)
	for _, p := range paths[:n] {
		batch = append(batch, truncateUTF8(p, MaxFilepathLength))
	}
	w.droppedFiles = batch
}

// truncateUTF8 cuts s to at most max bytes without splitting a rune.
func truncateUTF8(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !runeStart(s[cut]) {
		cut--
	}
	if cut == 0 {
		// No rune boundary to honor; keep the bytes.
		cut = max
	}
	return s[:cut]
}

func runeStart(b byte) bool { return b&0xC0 != 0x80 }
