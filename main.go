package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	clipboard "golang.design/x/clipboard"

	"tweakdock/config"
)

var (
	configPath  string
	dotenvPath  string
	doDebug     bool
	watchConfig bool
)

func main() {
	flag.StringVar(&configPath, "config", "tweakdock.yaml", "YAML settings file")
	flag.StringVar(&dotenvPath, "env", ".env", "file of "+config.EnvPrefix+" overrides")
	flag.BoolVar(&doDebug, "debug", false, "verbose/debug logging")
	flag.BoolVar(&watchConfig, "watch", true, "reload the settings file when it changes")
	flag.Parse()

	setupLogging(doDebug)
	if err := run(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// run owns everything that needs cleanup, so main can exit after the
// deferred calls have finished.
func run() error {
	cfg, err := config.Load(configPath, dotenvPath)
	if err != nil {
		logError("config: %v; using defaults", err)
		cfg = config.Defaults()
	}

	if err := clipboard.Init(); err != nil {
		logWarn("clipboard init failed: %v", err)
	} else {
		clipboardReady = true
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, err := newGame(ctx, cfg)
	if err != nil {
		return err
	}

	if watchConfig && !isWASM {
		go func() {
			onErr := func(err error) {
				logError("reload config: %v", err)
				notifyDesktop("tweakdock", err.Error())
			}
			if err := config.Watch(ctx, configPath, dotenvPath, g.reloads, onErr); err != nil {
				logWarn("config watch: %v", err)
			}
		}()
	}

	return runGame(g, cfg)
}
