package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/planetmode/worldstate/internal/config"
	"github.com/planetmode/worldstate/internal/domain"
	"github.com/planetmode/worldstate/internal/eventstore"
	"github.com/planetmode/worldstate/internal/observability"
	"github.com/planetmode/worldstate/internal/streamclient"
	"github.com/planetmode/worldstate/internal/view"
)

// feedwatch tails the event feed in a terminal: one line per event, with an
// alert recap on exit.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.LogLevel, cfg.LogFormat)
	store := eventstore.New(0)

	client := streamclient.New(cfg.WSURL, streamclient.Handlers{
		OnInit: func(init streamclient.InitData) {
			fmt.Printf("connected — %d regions, %d recent earthquakes, server time %s\n",
				len(init.Regions), len(init.RecentEarthquakes), init.ServerTime.Format("15:04:05"))
			for _, ev := range init.RecentEarthquakes {
				store.Add(ev)
			}
		},
		OnEvent: store.Add,
		OnState: func(state streamclient.State, attempt int) {
			fmt.Println(view.StatusLine(state, attempt))
		},
	}, streamclient.Options{}, logger)

	store.Subscribe(func(ev domain.Event) {
		fmt.Println(view.FeedLine(ev))
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		client.Disconnect()
	}()

	client.Run(ctx)

	fmt.Print(view.Alerts(store.Alerts()))
	fmt.Printf("%d events received\n", store.Len())
}
