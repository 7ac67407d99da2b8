package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"
	"github.com/sudorandom/volcano-map/pkg/sources"
	"github.com/sudorandom/volcano-map/pkg/volcanoengine"
)

var cli struct {
	Data         string `arg:"" optional:"" default:"assets/data.csv" type:"path" help:"Volcano table to plot (CSV, or XLSX by extension)."`
	Basemap      string `type:"path" help:"GeoJSON land outlines drawn beneath the grid."`
	WindowWidth  int    `default:"1280" help:"Initial window width."`
	WindowHeight int    `default:"720" help:"Initial window height."`
	TPS          int    `name:"tps" default:"60" help:"Ticks per second (engine updates)."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("volcano-viewer"),
		kong.Description("Interactive scatter plot of volcano locations, elevations and types."),
		kong.UsageOnError(),
	)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	table, err := sources.OpenTable(cli.Data)
	if err != nil {
		log.Fatalf("Failed to load volcano data: %v", err)
	}
	dataset, err := volcanoengine.NewDataset(table)
	if err != nil {
		log.Fatalf("Failed to parse volcano data: %v", err)
	}
	log.Printf("Loaded %d volcanoes from %s (%d rows skipped)", len(dataset.Records), cli.Data, dataset.Skipped)

	var basemap *sources.Basemap
	if cli.Basemap != "" {
		basemap, err = sources.LoadBasemap(cli.Basemap)
		if err != nil {
			log.Fatalf("Failed to load basemap: %v", err)
		}
		log.Printf("Loaded basemap %s: %d polygons, %d lines", cli.Basemap, len(basemap.Polygons), len(basemap.Lines))
	}

	engine, err := volcanoengine.NewEngine(dataset, basemap)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	ebiten.SetTPS(cli.TPS)
	ebiten.SetWindowSize(cli.WindowWidth, cli.WindowHeight)
	ebiten.SetWindowTitle(volcanoengine.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(engine); err != nil {
		log.Fatal(err)
	}
}
