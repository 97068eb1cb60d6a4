package main

import (
	"Floatbook/internal/audio"
	"Floatbook/internal/book"
	"Floatbook/internal/config"
	"Floatbook/internal/engine"
	"Floatbook/internal/logger"
	"Floatbook/internal/navigation"
	"Floatbook/internal/scene"
	"flag"
	"os"
	"runtime"

	"go.uber.org/zap"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "floatbook.json", "Path to the JSON or YAML settings file")
	assets := flag.String("assets", "", "Asset root (overrides the config file)")
	width := flag.Int("width", 0, "Window width (overrides the config file)")
	height := flag.Int("height", 0, "Window height (overrides the config file)")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	logger.Init()
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Log.Warn("Using default settings", zap.Error(err))
	}
	if *assets != "" {
		cfg.AssetRoot = *assets
	}
	if *width > 0 {
		cfg.Window.Width = int32(*width)
	}
	if *height > 0 {
		cfg.Window.Height = int32(*height)
	}
	logger.SetDebug(cfg.Debug || *debug)

	if err := run(cfg); err != nil {
		logger.Log.Error("Floatbook stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	eng := engine.New(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	eng.SetFaceCulling(true)
	eng.SetFrustumCulling(true)
	eng.SetClearColor(cfg.Window.ClearColor[0], cfg.Window.ClearColor[1], cfg.Window.ClearColor[2])

	spreads, err := book.Spreads(cfg.Book.Images, cfg.Book.Cover, cfg.Book.Back)
	if err != nil {
		return err
	}
	state := navigation.NewPageState(len(spreads))

	bookOpts := book.DefaultOptions()
	bookOpts.AssetRoot = cfg.AssetRoot
	bookOpts.PageWidth = cfg.Book.PageWidth
	bookOpts.PageHeight = cfg.Book.PageHeight
	bookOpts.Easing = cfg.Book.Easing
	b, err := book.New(spreads, state, eng, bookOpts)
	if err != nil {
		return err
	}

	composition, err := scene.New(eng, b, cfg.SceneOptions(), cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	eng.Camera = composition.Camera
	eng.Light = composition.Light

	labels, err := navigation.NewLabelFace(navigation.DefaultStripStyle().FontSize)
	if err != nil {
		return err
	}
	defer labels.Close()

	var click navigation.Sound
	player, err := audio.NewPlayer(audio.NewClip(cfg.ClickSoundPath()))
	if err != nil {
		logger.Log.Warn("Audio disabled", zap.Error(err))
	} else {
		defer player.Close()
		click = player
	}

	nav := navigation.NewNavigator(state, labels, eng, click, navigation.DefaultStripStyle())
	state.Subscribe(func(index int) {
		logger.Log.Info("Page changed", zap.Int("index", index), zap.Int("pages", state.Count()))
	})

	eng.Behaviours.Add(composition)
	eng.Behaviours.Add(nav)
	eng.SetInput(nav)
	eng.AddOverlay(nav)
	eng.OnResize(composition.OnViewportResize)
	eng.OnResize(func(width, height int32) {
		nav.OnResize(float32(width), float32(height))
	})

	logger.Log.Info("Starting Floatbook",
		zap.String("assets", cfg.AssetRoot),
		zap.Int("spreads", len(spreads)),
		zap.String("environment", cfg.Environment))
	return eng.Run(-1, -1)
}
