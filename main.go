package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.lost.host/meutraa/lanes/internal/audio"
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/input"
	"git.lost.host/meutraa/lanes/internal/logging"
	"git.lost.host/meutraa/lanes/internal/program"
	"git.lost.host/meutraa/lanes/internal/render"
	"git.lost.host/meutraa/lanes/internal/server"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		fmt.Fprintln(os.Stderr, "lanes:", err)
		os.Exit(2)
	}

	switch cfg.Command {
	case config.CommandServe:
		err = serve(cfg)
	default:
		err = play(cfg)
	}
	if nil != err {
		fmt.Fprintln(os.Stderr, "lanes:", err)
		os.Exit(1)
	}
}

func play(cfg *config.Config) error {
	logger, closer, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if nil != err {
		return err
	}
	defer closer.Close()

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}

	keys, err := input.OpenKeyboard(128)
	if nil != err {
		return err
	}
	defer keys.Close()

	var feedback audio.Feedback = audio.Silent{}
	if !cfg.Mute {
		bf, err := audio.NewBeepFeedback()
		if nil != err {
			logger.Warn("playing without sound", "err", err)
		} else {
			defer bf.Close()
			feedback = bf
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := program.New(program.Options{
		Config:   cfg,
		Source:   keys,
		Renderer: render.NewDefaultRenderer(os.Stdout),
		Size: func() (int, int, error) {
			return term.GetSize(fd)
		},
		Feedback: feedback,
		Logger:   logger,
	})
	err = p.Run(ctx)
	// Esc, SIGINT and a closed keyboard all end the run normally
	if errors.Is(err, context.Canceled) || errors.Is(err, input.ErrClosed) {
		err = nil
	}
	if nil != err {
		return err
	}
	fmt.Printf("score %d, max combo %d\n", p.Session.Score, p.Session.MaxCombo)
	return nil
}

func serve(cfg *config.Config) error {
	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if nil != err {
		return err
	}

	s, err := server.New(cfg, logger)
	if nil != err {
		return err
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errs := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", s.Addr())
		errs <- s.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-done:
	}
	return shutdown(s, logger)
}

func shutdown(s *server.Server, logger *log.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); nil != err {
		return fmt.Errorf("unable to shut down: %w", err)
	}
	logger.Info("stopped")
	return nil
}
