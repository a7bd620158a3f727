// Command silky opens a window and runs one of the tutorial scenes.
//
//	silky -config silky.toml -scene quad
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"dasa.cc/silky/config"
	"dasa.cc/silky/gpu"
	"dasa.cc/silky/host"
	"dasa.cc/silky/tutorial"
	"github.com/faiface/mainthread"
	"go.uber.org/zap"
)

var (
	flagConfig = flag.String("config", "", "TOML or YAML settings file.")
	flagScene  = flag.String("scene", "", "Scene to run, one of: "+strings.Join(tutorial.Names(), ", ")+".")
)

func init() {
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *flagConfig != "" {
		var err error
		if cfg, err = config.Load(*flagConfig); err != nil {
			log.Fatal(err)
		}
	}
	if *flagScene != "" {
		cfg.Scene.Name = *flagScene
		if err := cfg.Validate(); err != nil {
			log.Fatal(err)
		}
	}

	logger, err := cfg.Log.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()
	gpu.SetLogger(logger.Named("gpu"))
	tutorial.SetLogger(logger.Named("tutorial"))

	if err := run(cfg, logger); err != nil {
		logger.Error("exit", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	scene, err := tutorial.New(cfg.Scene.Name, cfg.Scene.Options(tutorial.DefaultGLSL))
	if err != nil {
		return err
	}
	h, err := newHandler(scene, cfg.Input)
	if err != nil {
		return err
	}
	opts := host.Options{
		Title:  cfg.Window.Title,
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		VSync:  cfg.Window.VSync,
		Logger: logger.Named("host"),
	}
	if opts.ExitKey, err = host.ParseKey(cfg.Input.ExitKey); err != nil {
		return err
	}
	if opts.ExitButton, err = host.ParseButton(cfg.Input.ExitButton); err != nil {
		return err
	}

	logger.Info("starting", zap.String("scene", cfg.Scene.Name), zap.String("title", opts.Title))
	mainthread.Run(func() {
		mainthread.Call(func() { err = host.Run(opts, h) })
	})
	if err != nil {
		return fmt.Errorf("silky: %w", err)
	}
	return nil
}
