package host

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valerio/brick4bit/brick/cpu"
	"github.com/valerio/brick4bit/brick/display"
	"github.com/valerio/brick4bit/brick/input"
	"github.com/valerio/brick4bit/brick/rom"
	"github.com/valerio/brick4bit/brick/timing"
)

// fakeStdin replays a fixed sequence of reads, one per call, then returns
// empty reads forever. Used to drive Loop without a real terminal.
type fakeStdin struct {
	reads [][]byte
	pos   int
}

func (f *fakeStdin) Read(buf []byte) (int, error) {
	if f.pos >= len(f.reads) {
		return 0, nil
	}
	n := copy(buf, f.reads[f.pos])
	f.pos++
	return n, nil
}

// erroringStdin always fails, to exercise Loop's fault path on a read error.
type erroringStdin struct{}

func (erroringStdin) Read(buf []byte) (int, error) { return 0, io.ErrClosedPipe }

func newTestLoop(t *testing.T, stdin StdinReader) (*Loop, *strings.Builder) {
	t.Helper()
	image, err := rom.FromBytes(make([]byte, rom.Size))
	require.NoError(t, err)

	var out strings.Builder
	return &Loop{
		Interp:     cpu.NewInterpreter(image),
		Renderer:   display.NewRenderer(&out),
		Controller: input.NewController(input.DefaultHoldTime),
		Limiter:    timing.NewNoOpLimiter(),
		Stdin:      stdin,
		SleepTicks: 4,
	}, &out
}

func TestRunQuitsOnBareEscape(t *testing.T) {
	l, _ := newTestLoop(t, &fakeStdin{reads: [][]byte{{0x1b}}})
	err := l.Run()
	assert.NoError(t, err)
	assert.True(t, l.Controller.Quit())
}

func TestRunStepsRomBeforeFirstRender(t *testing.T) {
	// A ROM full of zero bytes decodes as repeated NOP-equivalents (opcode
	// 0x00); the quit byte is read at the end of the first frame, after its
	// SleepTicks instructions have run, so PC has advanced.
	l, _ := newTestLoop(t, &fakeStdin{reads: [][]byte{{0x1b}}})
	startPC := l.Interp.State.PC
	err := l.Run()
	require.NoError(t, err)
	assert.NotEqual(t, startPC, l.Interp.State.PC)
}

func TestRunPropagatesStdinReadError(t *testing.T) {
	l, _ := newTestLoop(t, erroringStdin{})
	err := l.Run()
	assert.Error(t, err)
	assert.False(t, l.Controller.Quit())
}

func TestRunRestoresRendererOnQuit(t *testing.T) {
	// A fault cannot be forced from outside the cpu package, so this checks
	// that the deferred Close runs on a normal quit.
	l, out := newTestLoop(t, &fakeStdin{reads: [][]byte{{0x1b}}})
	err := l.Run()
	require.NoError(t, err)
	closing := out.String()
	assert.Contains(t, closing, "\x1b[?25h")
}

func TestRunLatchesPortsFromHeldKeys(t *testing.T) {
	// SPACE (0x20) presses Rotate; after one frame with no quit byte in a
	// second read, Ports should reflect it before the loop is stopped via
	// gamepad-free bare ESC on the next read.
	l, _ := newTestLoop(t, &fakeStdin{reads: [][]byte{{' '}, {0x1b}}})
	err := l.Run()
	require.NoError(t, err)
	assert.True(t, l.Controller.Quit())
	pp, _ := l.Controller.Ports()
	assert.Equal(t, uint8(0xE), pp) // Rotate (bit 0) still held, active-low
}
