// Package display implements the differential ANSI renderer: it diffs the
// CPU's 40-byte display window against a cache and emits escape sequences
// only for what actually changed, exactly as brickgame.c's sys_redraw does.
package display

// windowStart and windowEnd bound the 40-byte memory region the renderer
// watches, matching DISP_CHECK_START/DISP_CHECK_END.
const (
	windowStart = 176
	windowEnd   = 216
	windowSize  = windowEnd - windowStart
)

// item describes one labeled segment or digit glyph: a bit in the display
// window whose state controls whether item.Text is shown or hidden at a
// fixed terminal coordinate. Empty, when >= 0, is the number of blank
// columns to pad the hidden state with instead of reusing len(Text).
type item struct {
	Off   uint8
	Bit   uint8
	Row   int
	Col   int
	Empty int
	Text  string
}

// items is the literal display-item table from brickgame.c's disp_item[],
// unchanged: labels, food glyphs, and the single-digit fields baked
// straight into fixed screen coordinates rather than computed from the
// digit-decode tables (those cover the multi-digit score/speed/level
// fields; see digits.go).
var items = []item{
	{177, 1, 3, 24, -1, "GAME OVER"},
	{177, 2, 1, 30, -1, "0"}, // score xxxxx0x
	{177, 3, 1, 31, -1, "0"}, // score xxxxxx0
	{178, 0, 8, 33, -1, "!"}, // food 2, starfish
	{178, 1, 9, 33, -1, "@"}, // food 3, mushroom
	{178, 3, 7, 33, -1, "~"}, // food 1
	{180, 0, 13, 33, -1, "^"}, // food 7, strawberry
	{180, 1, 14, 33, -1, "&"}, // food 8, lime
	{180, 2, 12, 33, -1, "%"}, // food 6, radish
	{180, 3, 15, 33, -1, "*"}, // food 9, pumpkin
	{181, 0, 16, 33, -1, "+"}, // food 10, grapes
	{181, 1, 17, 33, -1, "="}, // food 11, tomato
	{181, 2, 19, 33, -1, "o"}, // food 13, cherry
	{181, 3, 18, 33, -1, "x"}, // food 12, banana
	{182, 0, 15, 25, -1, "GAME A"},
	{182, 1, 16, 25, -1, "GAME B"},
	{182, 2, 13, 24, -1, "LEVEL"},
	{182, 3, 17, 25, -1, "ROTATE"},
	{183, 0, 18, 26, -1, "<--"},
	{183, 1, 19, 27, -1, "-->"},
	{183, 2, 23, 24, -1, "TEA TIME"},
	{183, 3, 21, 25, -1, "PAUSE"},
	{187, 0, 5, 24, -1, "NEXT"},
	{193, 0, 1, 16, -1, "LINES"},
	{193, 2, 1, 10, -1, "SCORE"},
	{193, 3, 1, 25, -1, "1"}, // score 1xxxx__
	{195, 0, 2, 4, -1, "SOUND"},
	{195, 2, 1, 7, -1, "HI-"},
	{197, 0, 10, 33, -1, "#"}, // food 4, eggplant
	{197, 1, 11, 24, -1, "SPEED"},
	{202, 2, 11, 30, -1, "1"}, // speed 1x
	{205, 0, 11, 33, -1, "$"}, // food 5
	{210, 2, 13, 30, -1, "1"}, // level 1x
}
