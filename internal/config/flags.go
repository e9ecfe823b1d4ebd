package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file")
	flagSize       = flag.String("size", "", "Map size as WxH, e.g. 120x60")
	flagSeed       = flag.Int64("seed", 0, "World seed")
	flagRenderer   = flag.String("renderer", "", "Renderer: ascii or sprite")
	flagTiles      = flag.String("tiles", "", "Sprite sheet PNG path")
	flagTileSize   = flag.Int("tile-size", 0, "Tile edge length in pixels")
	flagOut        = flag.String("out", "", "Output image path for sprite mode")
	flagNoise      = flag.String("noise", "", "Noise algorithm: perlin or simplex")
	flagSaveConfig = flag.String("save-config", "", "Write the resolved config to this path and exit")
)

// seedSet records whether -seed was passed explicitly, since 0 is a valid
// seed and also the default.
var seedSet bool

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveConfigPath returns the path given via --save-config, if any.
func SaveConfigPath() string {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagSize != "" {
		cfg.Map.Size = *flagSize
	}
	if seedSet {
		cfg.Map.Seed = *flagSeed
	}
	if *flagRenderer != "" {
		cfg.Render.Renderer = *flagRenderer
	}
	if *flagTiles != "" {
		cfg.Render.Tiles = *flagTiles
	}
	if *flagTileSize > 0 {
		cfg.Render.TileSize = *flagTileSize
	}
	if *flagOut != "" {
		cfg.Render.Out = *flagOut
	}
	if *flagNoise != "" {
		cfg.Noise.Algorithm = *flagNoise
	}
}
