// cmd/yomiage/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"yomiage/internal/config"
	"yomiage/internal/discord"
	"yomiage/internal/storage"
	"yomiage/internal/tts"
	v "yomiage/internal/version"
)

func main() {
	log.Printf("[INFO] Starting %v %v...", v.AppName, v.Version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal(err)
	}

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	engine, err := tts.NewGoogle(ctx, cfg.GoogleCredentials)
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	bot := discord.NewBot(cfg, store, engine)

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
		}
		cancel()
	case <-ctx.Done():
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
