package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spacesedan/civicpulse/internal/bootstrap"
	"github.com/spacesedan/civicpulse/internal/models"
	"github.com/spacesedan/civicpulse/internal/responder"
	"github.com/spacesedan/civicpulse/internal/session"
)

var sessionID = flag.String("session", "", "resume an existing session id")

func main() {
	flag.Parse()

	cfg, closer, err := bootstrap.Init()
	if err != nil {
		slog.Error("[Main] Failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	classifier, err := bootstrap.NewClassifier(cfg)
	if err != nil {
		slog.Error("[Main] Failed to load topic table", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store, closeStore, err := bootstrap.NewSessionStore(ctx, cfg)
	if err != nil {
		slog.Error("[Main] Failed to open session store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	r := responder.New(responder.NewSelector(classifier), store)

	id := *sessionID
	if id == "" {
		id = session.NewID()
	}
	fmt.Printf("Session %s. Type a message, /reset to clear history, or an empty line to quit.\n", id)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" || ctx.Err() != nil {
			break
		}

		if message == "/reset" {
			if err := r.Reset(ctx, id); err != nil {
				slog.Error("[Main] Failed to reset session", slog.String("error", err.Error()))
				continue
			}
			fmt.Println("Session history cleared.")
			continue
		}

		resp, err := r.Respond(ctx, models.ChatRequest{Message: message, SessionID: id})
		if err != nil {
			slog.Error("[Main] Failed to respond", slog.String("error", err.Error()))
			continue
		}
		fmt.Println(resp.Response)
	}

	slog.Info("[Main] Chat ended", slog.String("session_id", id))
}
