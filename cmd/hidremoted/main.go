// Command hidremoted loads configuration, wires the keyboard and mouse
// engines to their HID gadget device paths, and serves the RPC surface
// until a termination signal arrives.
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/falleng0d/hidremote/internal/config"
	"github.com/falleng0d/hidremote/internal/dispatch"
	"github.com/falleng0d/hidremote/internal/hidio"
	"github.com/falleng0d/hidremote/internal/keyboard"
	"github.com/falleng0d/hidremote/internal/mouse"
	"github.com/falleng0d/hidremote/internal/rpcserver"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	log.Logger = logger

	cfg := config.New()
	path, err := config.ResolvePath()
	if err != nil {
		logger.Fatal().Err(err).Msg("resolve config path")
	}
	if err := cfg.Load(path); err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}

	writer := hidio.New(logger)
	kb := keyboard.New(writer, cfg.KeyboardPath(), cfg.MediaPath())
	ms := mouse.New(writer, cfg.MousePath())
	d := dispatch.New(kb, ms, cfg)

	if err := kb.ReleaseAll(); err != nil {
		logger.Warn().Err(err).Msg("release keyboard state at startup")
	}
	if err := ms.ReleaseAllButtons(); err != nil {
		logger.Warn().Err(err).Msg("release mouse state at startup")
	}

	host := cfg.Host()
	if host == "0.0.0.0" {
		host = "[::]"
	}
	addr := host + ":" + strconv.Itoa(cfg.Port())
	srv := rpcserver.New(addr, d, cfg, logger)
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("start rpc server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info().Msg("shutting down")
	_ = kb.ReleaseAll()
	_ = ms.ReleaseAllButtons()
	if err := srv.Stop(); err != nil {
		logger.Error().Err(err).Msg("rpc server shutdown")
	}
}
