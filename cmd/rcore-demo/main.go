package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gekko3d/rcore"
	"github.com/gekko3d/rcore/platform/glfwplatform"
)

func init() {
	// GLFW event handling must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rcore-demo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "YAML window config file")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	cfg := rcore.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Title = 1280, 720, "rcore demo"
	cfg.Flags = []string{"resizable", "vsync", "highdpi"}
	if *configPath != "" {
		loaded, err := rcore.LoadConfigFile(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	app := rcore.NewAppBuilder().
		UseStates(stateTitle, stateDone).
		UseModule(
			rcore.LoggingModule{Prefix: "rcore-demo", Debug: *debug || cfg.Debug},
			rcore.PlatformWindowModule{Config: cfg, Platform: glfwplatform.New()},
			rcore.TimeModule{},
			rcore.InputModule{},
		).
		Build()

	app.UseSystem(rcore.System(titleEnterSystem).InState(rcore.OnEnter(stateTitle)))
	app.UseSystem(rcore.System(titleSystem).InState(rcore.OnExecute(stateTitle)))
	app.UseSystem(rcore.System(demoSystem).InState(rcore.OnExecute(stateRunning)))
	app.UseSystem(rcore.System(doneEnterSystem).InState(rcore.OnEnter(stateDone)))
	app.Run()
	return nil
}

const (
	stateTitle rcore.State = iota
	stateRunning
	stateDone
)

func titleEnterSystem(c *rcore.Core) {
	c.Logger().Infof("press Enter to start, Q to quit")
}

func titleSystem(c *rcore.Core, cmd *rcore.Commands) {
	if c.IsKeyPressed(rcore.KeyEnter) {
		cmd.ChangeState(stateRunning)
	}
}

func doneEnterSystem(c *rcore.Core) {
	c.Logger().Infof("bye")
}

func demoSystem(c *rcore.Core, t *rcore.Time, cmd *rcore.Commands) {
	log := c.Logger()

	if c.IsKeyPressed(rcore.KeyQ) {
		cmd.ChangeState(stateDone)
		return
	}

	for k := c.GetKeyPressed(); k != rcore.KeyNull; k = c.GetKeyPressed() {
		log.Debugf("key pressed: %s", k)
	}
	for r := c.GetCharPressed(); r != 0; r = c.GetCharPressed() {
		log.Debugf("char: %q", r)
	}

	if c.IsKeyPressed(rcore.KeyF11) {
		c.ToggleFullscreen()
	}
	if c.IsKeyPressed(rcore.KeyF10) {
		c.ToggleBorderlessWindowed()
	}
	if c.IsKeyPressed(rcore.KeyF9) {
		if c.IsCursorHidden() {
			c.EnableCursor()
		} else {
			c.DisableCursor()
		}
	}

	if c.IsWindowResized() {
		log.Infof("resized: screen %v render %v", c.GetScreenSize(), c.GetRenderSize())
	}
	if c.IsFileDropped() {
		for _, path := range c.LoadDroppedFiles() {
			log.Infof("dropped: %s", path)
		}
		c.UnloadDroppedFiles()
	}

	for id := 0; id < rcore.MaxGamepads; id++ {
		if !c.IsGamepadAvailable(id) {
			continue
		}
		if c.IsGamepadButtonPressed(id, rcore.GamepadButtonRightFaceDown) {
			log.Infof("gamepad %d (%s): A", id, c.GetGamepadName(id))
		}
	}

	if t.Frame%600 == 0 {
		pos := c.GetMousePosition()
		log.Debugf("frame %d dt=%s mouse=(%.0f, %.0f)", t.Frame, t.Dt, pos.X(), pos.Y())
	}
}
