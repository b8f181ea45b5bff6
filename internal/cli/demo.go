package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Venorrak/greenheatgd/internal/cursor"
	"github.com/Venorrak/greenheatgd/internal/display"
	"github.com/Venorrak/greenheatgd/internal/ingest"
	"github.com/Venorrak/greenheatgd/internal/log"
	"github.com/Venorrak/greenheatgd/internal/mapping"
)

// demoCmd opens a window instead of touching the OS cursor, so a channel
// can be watched without handing the audience real input.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Visualize a channel's pointers in a window",
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ws := connectTransport(cfg)
	defer ws.Close()

	overlay := display.NewOverlay(int(cfg.Viewport.X), int(cfg.Viewport.Y))

	ing := ingest.New(ingest.Options{
		Transport:  ws,
		Mapper:     mapping.Mapper{Viewport: cfg.Viewport, Region: cfg.Region},
		Tracker:    cursor.NewTracker(cfg.CursorCap),
		Sink:       ingest.SinkFunc(overlay.HandleEvent),
		Handler:    loggingHandler(),
		Detecting:  true,
		Simulating: true,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ing.Run(ctx, time.Duration(cfg.IntervalMS)*time.Millisecond)

	log.Infof("demo overlay for channel %q", cfg.Channel)
	return overlay.Run()
}
