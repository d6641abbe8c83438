package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8"
	"github.com/hexaflex/chip8/arch"
)

// App defines application context.
type App struct {
	config       *Config            // Application configuration.
	window       *glfw.Window       // OpenGL/GLFW context.
	machine      *chip8.Machine     // The virtual machine running the program.
	ctrl         *MachineController // Execution control and clock frequency.
	renderer     *Renderer          // Framebuffer renderer.
	keys         uint16             // Current hex keypad state.
	lastTick     time.Time          // Last 60 Hz timer tick.
	titleUpdated time.Time          // Value used to periodically update window title.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.machine = chip8.New(a.printTrace)
	a.ctrl = NewMachineController(a.machine, func(err error) bool {
		if config.IgnoreInvalid && errors.Is(err, chip8.ErrInvalidOpcode) {
			log.Println(err)
			return true
		}
		return false
	})
	a.renderer = NewRenderer()
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())
	printHelp()

	if err := a.loadProgram(); err != nil {
		return err
	}

	a.ctrl.Start()

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations. Instructions, timers and
// rendering all run on the 60 Hz cadence: a fixed number of instructions
// per tick, one timer decrement, one frame.
func (a *App) mainLoop() {
	glfw.PollEvents()

	if time.Since(a.lastTick) < time.Second/60 {
		return
	}
	a.lastTick = time.Now()

	a.machine.SetKeys(a.keys)

	if a.ctrl.Running() {
		for i := 0; i < a.config.Cycles && a.ctrl.Running(); i++ {
			if err := a.ctrl.Step(); err != nil {
				log.Println(err)
			}
		}
	}

	a.machine.TickTimers()

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	a.renderer.Draw(a.machine.Framebuffer())
	a.window.SwapBuffers()

	// Periodically update the window title to show the current clock frequency.
	if time.Since(a.titleUpdated) >= time.Second*2 {
		a.titleUpdated = time.Now()
		freq := prettyFrequency(a.ctrl.Frequency())
		a.window.SetTitle(fmt.Sprintf("%s %s - %s", AppName, AppVersion, freq))
	}
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	a.ctrl.Stop()
	a.renderer.Shutdown()

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

// keyCallback handles emulator control keys and tracks the state of the
// sixteen hex keypad keys.
func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if hex, ok := keymap[key]; ok {
		switch action {
		case glfw.Press:
			a.keys |= 1 << hex
		case glfw.Release:
			a.keys &^= 1 << hex
		}
		return
	}

	if action != glfw.Press {
		return
	}

	var err error

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF2:
		a.config.PrintTrace = !a.config.PrintTrace
	case glfw.KeyF5:
		err = a.loadProgram()
	case glfw.KeyF6:
		a.ctrl.ToggleRun()
	case glfw.KeyF7:
		err = a.ctrl.Step()
	}

	if err != nil {
		log.Println(err)
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := chip8.DisplayWidth * a.config.ScaleFactor
	height := chip8.DisplayHeight * a.config.ScaleFactor

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
		glfw.WindowHint(glfw.Maximized, glfw.True)
	} else {
		glfw.WindowHint(glfw.Decorated, glfw.True)
		glfw.WindowHint(glfw.Maximized, glfw.False)
	}

	a.window, err = glfw.CreateWindow(width, height, "", monitor, nil)
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.dispose()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return a.renderer.Startup()
}

// loadProgram loads the current ROM from disk and resets the machine.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.Program)

	rom, err := os.ReadFile(a.config.Program)
	if err != nil {
		return err
	}

	return a.machine.LoadProgram(rom)
}

// printTrace prints instruction trace data. This can be toggled
// on and off through a.config.PrintTrace.
func (a *App) printTrace(pc uint16, i *arch.Instruction) {
	if !a.config.PrintTrace {
		return
	}
	fmt.Printf("%03x  %04x  %s\n", pc, i.Word, i)
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the emulator.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F2       Enable/Disable debug trace output.\n")
	sb.WriteString(" F5       (re)load the ROM from disk and reset the machine.\n")
	sb.WriteString(" F6       Start/Stop program execution.\n")
	sb.WriteString(" F7       Perform a single execution step.\n")
	sb.WriteString("\nhex keypad:\n")
	sb.WriteString(" 1 2 3 4      1 2 3 C\n")
	sb.WriteString(" Q W E R  ->  4 5 6 D\n")
	sb.WriteString(" A S D F      7 8 9 E\n")
	sb.WriteString(" Z X C V      A 0 B F")
	log.Println(sb.String())
}

// prettyFrequency returns a human-readable version of the given clock frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.2f MHz", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
