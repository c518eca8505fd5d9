package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/valerio/brick4bit/brick/cpu"
	"github.com/valerio/brick4bit/brick/display"
	"github.com/valerio/brick4bit/brick/host"
	"github.com/valerio/brick4bit/brick/input"
	"github.com/valerio/brick4bit/brick/rom"
	"github.com/valerio/brick4bit/brick/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "brickemu"
	app.Description = "An emulator for 4-bit handheld brick-game consoles"
	app.Usage = "brickemu [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM image",
			Value: "brickrom.bin",
		},
		cli.StringFlag{
			Name:  "save",
			Usage: "Path to a save-state file to resume from and checkpoint to",
		},
		cli.StringFlag{
			Name:  "js",
			Usage: "Path to a Linux joystick device (e.g. /dev/input/js0)",
		},
		cli.IntFlag{
			Name:  "k",
			Usage: "Key hold time in milliseconds",
			Value: int(input.DefaultHoldTime / time.Millisecond),
		},
		cli.IntFlag{
			Name:  "t",
			Usage: "CPU instructions executed per rendered frame",
			Value: 1000,
		},
		cli.IntFlag{
			Name:  "d",
			Usage: "Target frame period in microseconds",
			Value: int(timing.DefaultFramePeriod / time.Microsecond),
		},
		cli.IntFlag{
			Name:  "i",
			Usage: "Timer clock divisor",
			Value: int(cpu.DefaultTimerDivisor),
		},
		cli.BoolFlag{
			Name:  "probe-keys",
			Usage: "Print the raw bytes read from stdin instead of running the emulator",
		},
		cli.BoolFlag{
			Name:  "help, h",
			Usage: "Show help and exit with status 1",
		},
	}
	app.Action = run
	// urfave/cli's built-in help flag exits 0 and is handled before Before
	// runs, so it is hidden and replaced by the flag above: -h/--help exits 1,
	// same as a usage error.
	app.HideHelp = true
	app.Before = func(c *cli.Context) error {
		if c.Bool("help") {
			cli.ShowAppHelp(c)
			os.Exit(1)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("brickemu exited with an error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(c)
		return errors.New("no ROM path provided")
	}

	image, err := rom.Load(romPath)
	if err != nil {
		return err
	}

	if c.Bool("probe-keys") {
		return probeKeys()
	}

	var interp *cpu.Interpreter
	if savePath := c.String("save"); savePath != "" {
		state, err := cpu.LoadSave(savePath)
		switch {
		case err == nil:
			interp = cpu.NewInterpreterWithState(image, state)
		case errors.Is(err, os.ErrNotExist):
			interp = cpu.NewInterpreter(image)
		default:
			return fmt.Errorf("brickemu: %w", err)
		}
	} else {
		interp = cpu.NewInterpreter(image)
	}
	interp.SetTimerIncrement(cpu.TimerIncrementFor(uint32(c.Int("i"))))

	term, err := host.OpenTerminal()
	if err != nil {
		return fmt.Errorf("brickemu: %w", err)
	}
	defer term.Close()

	controller := input.NewController(time.Duration(c.Int("k")) * time.Millisecond)
	if jsPath := c.String("js"); jsPath != "" {
		gp, err := input.OpenGamepad(jsPath)
		if err != nil {
			return fmt.Errorf("brickemu: %w", err)
		}
		controller.AttachGamepad(gp)
	}

	loop := &host.Loop{
		Interp:     interp,
		Renderer:   display.NewRenderer(os.Stdout),
		Controller: controller,
		Limiter:    timing.NewFrameLimiter(time.Duration(c.Int("d")) * time.Microsecond),
		Stdin:      term,
		SleepTicks: uint64(c.Int("t")),
	}

	slog.Info("starting emulation", "rom", romPath, "instructions_per_frame", c.Int("t"), "frame_period_us", c.Int("d"))

	runErr := loop.Run()
	if runErr != nil {
		return fmt.Errorf("brickemu: %w", runErr)
	}

	if savePath := c.String("save"); savePath != "" {
		if err := cpu.Save(savePath, interp.State); err != nil {
			slog.Error("failed to write save state", "path", savePath, "error", err)
		}
	}

	slog.Info("emulation stopped")
	return nil
}

// probeKeys prints each raw byte read from stdin until a read returns a
// lone ESC, a diagnostic for wiring up a new terminal. Bytes are not decoded
// into keys, and the gamepad is not read.
func probeKeys() error {
	term, err := host.OpenTerminal()
	if err != nil {
		return fmt.Errorf("brickemu: %w", err)
	}
	defer term.Close()

	fmt.Println("probing raw input, press keys (ESC to quit)...")
	buf := make([]byte, 8)
	for {
		n, err := term.Read(buf)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			fmt.Printf("byte 0x%02x\n", buf[i])
			if buf[i] == 0x1b && n == 1 {
				return nil
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
}
