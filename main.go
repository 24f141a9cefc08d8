package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/psxgo/psxgo/emulator"
)

func main() {
	// parse arguments
	biosPath := flag.String("bios", "SCPH1001.BIN", "path to the BIOS file")
	flag.Parse()

	// load firmware and reset the CPU
	bios := loadBios(*biosPath)
	cpu := emulator.NewCPU()

	// inspect the state in a window
	viewer := emulator.NewStateViewer(cpu, bios)
	ebiten.SetWindowSize(emulator.VIEWER_WIDTH, emulator.VIEWER_HEIGHT)
	ebiten.SetWindowTitle("psxgo")
	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}

func loadBios(path string) *emulator.BIOS {
	log.Printf("loading bios \"%s\"", path)
	start := time.Now()

	bios, err := emulator.LoadBIOSFromFile(path)
	if err != nil {
		panic(err)
	}

	log.Printf("loaded bios in %s", time.Since(start))
	return bios
}
