package emulator

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	VIEWER_COLS  = 64                        // Words per pane row
	VIEWER_ROWS  = 128                       // Pane rows
	VIEWER_PAGE  = VIEWER_COLS * VIEWER_ROWS // Words per pane
	VIEWER_SCALE = 4                         // Screen pixels per word

	VIEWER_WIDTH  = 640 // Window width
	VIEWER_HEIGHT = 512 // Window height
)

// The source of the words shown in the viewer pane
type ViewSource int

const (
	VIEW_MEMORY ViewSource = iota // CPU memory, indexed by word address
	VIEW_BIOS                     // BIOS image, indexed by byte offset
)

// An Ebitengine front-end that displays the CPU state: the register
// file, a scrollable pane of memory or BIOS words (one word per pixel)
// and a list of watched memory words
type StateViewer struct {
	Cpu     *CPU       // Inspected CPU
	Bios    *BIOS      // Loaded firmware image
	Watches *WatchList // Pinned memory words
	Source  ViewSource // Pane source
	Base    uint32     // Word index of the pane's top left cell
	CursorX uint32     // Cursor column inside the pane
	CursorY uint32     // Cursor row inside the pane

	pane *ebiten.Image // One pixel per word, scaled up when drawn
	pix  []byte        // RGBA staging buffer for the pane
}

// Returns a new state viewer for a CPU and BIOS pair
func NewStateViewer(cpu *CPU, bios *BIOS) *StateViewer {
	return &StateViewer{
		Cpu:     cpu,
		Bios:    bios,
		Watches: NewWatchList(),
	}
}

func (viewer *StateViewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if viewer.Source == VIEW_MEMORY {
			viewer.Source = VIEW_BIOS
		} else {
			viewer.Source = VIEW_MEMORY
		}
		viewer.clampBase()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && viewer.CursorX > 0 {
		viewer.CursorX--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) && viewer.CursorX < VIEWER_COLS-1 {
		viewer.CursorX++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		if viewer.CursorY > 0 {
			viewer.CursorY--
		} else {
			viewer.scrollUp(VIEWER_COLS)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		if viewer.CursorY < VIEWER_ROWS-1 {
			viewer.CursorY++
		} else {
			viewer.scrollDown(VIEWER_COLS)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		viewer.scrollUp(VIEWER_PAGE)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) {
		viewer.scrollDown(VIEWER_PAGE)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		viewer.Base = 0
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		viewer.pin()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		viewer.unpin()
	}
	return nil
}

func (viewer *StateViewer) Draw(screen *ebiten.Image) {
	if viewer.pane == nil {
		viewer.pane = ebiten.NewImage(VIEWER_COLS, VIEWER_ROWS)
		viewer.pix = make([]byte, VIEWER_PAGE*4)
	}

	// one pixel per word, low 24 bits as RGB. Out of range cells are
	// drawn dark gray so the end of the source is visible
	for i := 0; i < VIEWER_PAGE; i++ {
		val, ok := viewer.readWord(viewer.Base + uint32(i))
		r, g, b := byte(val), byte(val>>8), byte(val>>16)
		if !ok {
			r, g, b = 0x20, 0x20, 0x20
		}
		viewer.pix[i*4+0] = r
		viewer.pix[i*4+1] = g
		viewer.pix[i*4+2] = b
		viewer.pix[i*4+3] = 0xff
	}
	viewer.pane.WritePixels(viewer.pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(VIEWER_SCALE, VIEWER_SCALE)
	screen.DrawImage(viewer.pane, op)

	// cursor cell
	ebitenutil.DrawRect(
		screen,
		float64(viewer.CursorX*VIEWER_SCALE), float64(viewer.CursorY*VIEWER_SCALE),
		VIEWER_SCALE, VIEWER_SCALE,
		color.RGBA{0xff, 0xff, 0xff, 0xa0},
	)

	textX := VIEWER_COLS*VIEWER_SCALE + 8
	ebitenutil.DebugPrintAt(screen, viewer.registerText(), textX, 8)
	ebitenutil.DebugPrintAt(screen, viewer.statusText(), textX, 328)
}

func (viewer *StateViewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return VIEWER_WIDTH, VIEWER_HEIGHT
}

// Scrolls the pane up (towards address 0) by `words`
func (viewer *StateViewer) scrollUp(words uint32) {
	if viewer.Base >= words {
		viewer.Base -= words
	} else {
		viewer.Base = 0
	}
}

// Scrolls the pane down by `words`
func (viewer *StateViewer) scrollDown(words uint32) {
	viewer.Base += words
	viewer.clampBase()
}

// Keeps the pane base at or just past the end of the source, so
// scrolling far enough always reveals the out of range region
func (viewer *StateViewer) clampBase() {
	if max := viewer.wordCount(); viewer.Base > max {
		viewer.Base = max
	}
}

// Number of words the current source holds
func (viewer *StateViewer) wordCount() uint32 {
	if viewer.Source == VIEW_BIOS {
		return BIOS_SIZE / 4
	}
	return MEMORY_SIZE
}

// Reads the word at pane index `idx` from the current source
func (viewer *StateViewer) readWord(idx uint32) (uint32, bool) {
	if viewer.Source == VIEW_BIOS {
		return viewer.Bios.ReadWord(idx * 4)
	}
	return viewer.Cpu.Mem.Read(idx)
}

// Word index of the cursor cell
func (viewer *StateViewer) cursorIndex() uint32 {
	return viewer.Base + viewer.CursorY*VIEWER_COLS + viewer.CursorX
}

// Pins the memory word under the cursor. BIOS words cannot be watched
func (viewer *StateViewer) pin() {
	if viewer.Source != VIEW_MEMORY {
		return
	}
	viewer.Watches.Add(viewer.cursorIndex())
}

// Unpins the memory word under the cursor
func (viewer *StateViewer) unpin() {
	if viewer.Source != VIEW_MEMORY {
		return
	}
	viewer.Watches.Remove(viewer.cursorIndex())
}

// Formats the register panel: PC, HI, LO and all 32 GPRs by name
func (viewer *StateViewer) registerText() string {
	cpu := viewer.Cpu
	var b strings.Builder
	fmt.Fprintf(&b, "pc %08x  hi %08x\nlo %08x\n\n", cpu.PC, cpu.Hi, cpu.Lo)
	for i := 0; i < 32; i += 2 {
		fmt.Fprintf(
			&b, "%-2s %08x  %-2s %08x\n",
			GetRegisterName(uint32(i)), cpu.Regs[i],
			GetRegisterName(uint32(i+1)), cpu.Regs[i+1],
		)
	}
	return b.String()
}

// Formats the pane status, the word the first fetch will read and the
// watched memory words
func (viewer *StateViewer) statusText() string {
	var b strings.Builder

	src := "ram"
	if viewer.Source == VIEW_BIOS {
		src = "bios"
	}
	fmt.Fprintf(&b, "view %s  base %08x\n", src, viewer.Base)

	idx := viewer.cursorIndex()
	if val, ok := viewer.readWord(idx); ok {
		fmt.Fprintf(&b, "cursor %08x = %08x\n", idx, val)
	} else {
		fmt.Fprintf(&b, "cursor %08x = out of range\n", idx)
	}

	// the word behind the program counter, looked up the way the fetch
	// stage will do it: range check, then a BIOS offset read
	if BIOS_RANGE.Contains(viewer.Cpu.PC) {
		if val, ok := viewer.Bios.ReadWord(BIOS_RANGE.Offset(viewer.Cpu.PC)); ok {
			fmt.Fprintf(&b, "pc word = %08x\n", val)
		}
	}

	if len(viewer.Watches.Addrs) > 0 {
		b.WriteString("\nwatches (enter pins, backspace unpins):\n")
		for _, addr := range viewer.Watches.Addrs {
			if val, ok := viewer.Cpu.Mem.Read(addr); ok {
				fmt.Fprintf(&b, " %08x = %08x\n", addr, val)
			} else {
				fmt.Fprintf(&b, " %08x = out of range\n", addr)
			}
		}
	}
	return b.String()
}
