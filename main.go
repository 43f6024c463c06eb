package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	params := paramsFromFlags()
	if err := params.validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile failed to start: %v", err)
		}
		defer stop()
	}

	g := newGame(params)
	defer g.solver.Close()
	if *statsAddrFlag != "" {
		g.stats = startStatsServer(*statsAddrFlag)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Water Surface")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
