// Package main is the entry point for the mapscii overworld generator.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"

	"github.com/mgelsinger/mapscii/internal/atlas"
	"github.com/mgelsinger/mapscii/internal/config"
	"github.com/mgelsinger/mapscii/internal/logger"
	"github.com/mgelsinger/mapscii/internal/render"
	"github.com/mgelsinger/mapscii/internal/terrain"
)

// placeholderSheet is written when sprite mode runs without a sheet.
const placeholderSheet = "placeholder_tiles.png"

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to save config", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config saved", zap.String("path", path))
		return
	}

	if err := run(cfg); err != nil {
		logger.Error("map generation failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	width, height, err := config.ParseSize(cfg.Map.Size)
	if err != nil {
		return err
	}

	gen, err := terrain.NewGenerator(cfg.Noise.Algorithm, cfg.Map.Seed)
	if err != nil {
		return err
	}

	start := time.Now()
	grid, err := gen.Generate(width, height)
	if err != nil {
		return err
	}
	logger.Info("terrain generated",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Int64("seed", gen.Seed()),
		zap.String("noise", cfg.Noise.Algorithm),
		zap.Duration("elapsed", time.Since(start)))

	switch cfg.Render.Renderer {
	case "ascii":
		return renderAscii(grid)
	case "sprite":
		return renderSprite(cfg, grid)
	default:
		// Load() validates the renderer; this is unreachable via the CLI.
		return fmt.Errorf("unknown renderer %q", cfg.Render.Renderer)
	}
}

func renderAscii(grid *terrain.Grid) error {
	out, err := render.NewAscii(terrain.GlyphTable()).Render(grid)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	for _, line := range out.Text {
		fmt.Fprintln(w, line)
	}
	return w.Flush()
}

func renderSprite(cfg *config.Config, grid *terrain.Grid) error {
	sheetPath := cfg.Render.Tiles
	if sheetPath == "" {
		sheetPath = placeholderSheet
	}
	if _, err := os.Stat(sheetPath); errors.Is(err, fs.ErrNotExist) {
		if err := atlas.WritePlaceholder(sheetPath, terrain.Tileset(), cfg.Render.TileSize); err != nil {
			return err
		}
		logger.Info("no sprite sheet supplied, wrote placeholder", zap.String("path", sheetPath))
	}

	a, err := atlas.Load(sheetPath, cfg.Render.TileSize, atlas.PlacementsFromTileset(terrain.Tileset()))
	if err != nil {
		return err
	}

	out, err := render.NewSprite(a).Render(grid)
	if err != nil {
		return err
	}

	if err := writeImage(cfg.Render.Out, out.Image); err != nil {
		return err
	}
	logger.Info("sprite map saved", zap.String("path", cfg.Render.Out))
	return nil
}

// writeImage encodes by output extension: .bmp or .png (the default).
func writeImage(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		err = bmp.Encode(f, img)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}
