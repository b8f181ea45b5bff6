// Package cli wires the command line to the ingestion pipeline.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Venorrak/greenheatgd/internal/config"
	"github.com/Venorrak/greenheatgd/internal/cursor"
	"github.com/Venorrak/greenheatgd/internal/ingest"
	"github.com/Venorrak/greenheatgd/internal/inject"
	"github.com/Venorrak/greenheatgd/internal/log"
	"github.com/Venorrak/greenheatgd/internal/mapping"
	"github.com/Venorrak/greenheatgd/internal/packet"
	"github.com/Venorrak/greenheatgd/internal/transport"
)

var (
	endpoint    string
	channel     string
	regionStr   string
	viewportStr string
	simulate    bool
	verbose     bool
	bufferSize  int
	intervalMS  int
	cursorCap   int
)

// RootCmd ingests an audience channel and replays its pointer input
// through the OS cursor.
var RootCmd = &cobra.Command{
	Use:   "greenheat",
	Short: "Replay audience pointer input from a greenheat channel",
	Long: `greenheat connects to an audience relay channel, decodes the pointer
packets viewers generate on the stream overlay, and replays them as local
pointer input. Without --simulate it only logs what it receives.`,
	SilenceUsage: true,
	RunE:         runHost,
}

func init() {
	defaults := config.Default()
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&endpoint, "endpoint", defaults.Endpoint, "Relay base URL")
	flags.StringVarP(&channel, "channel", "c", "", "Audience channel name (required)")
	flags.StringVar(&regionStr, "region", "", "Mapping region as x,y,w,h (default: full viewport)")
	flags.StringVar(&viewportStr, "viewport", "", "Viewport size as w,h")
	flags.IntVar(&bufferSize, "buffer", defaults.BufferSize, "Inbound frame buffer size")
	flags.IntVar(&intervalMS, "interval", defaults.IntervalMS, "Ingestion tick interval in milliseconds")
	flags.IntVar(&cursorCap, "sessions", defaults.CursorCap, "Max tracked remote sessions (0 = default)")
	flags.BoolVar(&verbose, "verbose", false, "Enable debug logging")
	RootCmd.Flags().BoolVar(&simulate, "simulate", false, "Inject pointer events into the OS")

	RootCmd.AddCommand(demoCmd)
}

func buildConfig() (*config.Config, error) {
	cfg := config.Default()
	cfg.Endpoint = endpoint
	cfg.Channel = channel
	cfg.Simulating = simulate
	cfg.BufferSize = bufferSize
	cfg.IntervalMS = intervalMS
	cfg.CursorCap = cursorCap
	cfg.Verbose = verbose

	if channel == "" {
		return nil, fmt.Errorf("--channel is required")
	}
	if viewportStr != "" {
		vp, err := config.ParseViewport(viewportStr)
		if err != nil {
			return nil, err
		}
		cfg.Viewport = vp
	}
	if regionStr != "" {
		region, err := config.ParseRegion(regionStr)
		if err != nil {
			return nil, err
		}
		cfg.Region = region
	}

	log.Verbose = cfg.Verbose
	return cfg, nil
}

func runHost(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	ws := connectTransport(cfg)
	defer ws.Close()

	var sink ingest.Sink
	if cfg.Simulating {
		sink = inject.Robotgo{}
	}

	ing := ingest.New(ingest.Options{
		Transport:  ws,
		Mapper:     mapping.Mapper{Viewport: cfg.Viewport, Region: cfg.Region},
		Tracker:    cursor.NewTracker(cfg.CursorCap),
		Sink:       sink,
		Handler:    loggingHandler(),
		Detecting:  cfg.Detecting,
		Simulating: cfg.Simulating,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Infof("ingesting channel %q (simulate=%v)", cfg.Channel, cfg.Simulating)
	ing.Run(ctx, time.Duration(cfg.IntervalMS)*time.Millisecond)

	log.Info("shutting down")
	return nil
}

// connectTransport dials in the background; the ingest loop no-ops until
// the connection is live, and stays a no-op if it never comes up.
func connectTransport(cfg *config.Config) *transport.WebSocket {
	ws := transport.NewWebSocket(cfg.Endpoint, cfg.Channel, cfg.BufferSize)
	go func() {
		if err := ws.Connect(); err != nil {
			log.Warningf("relay connect: %v", err)
		} else {
			log.Infof("connected to %s", ws.URL())
		}
	}()
	return ws
}

func loggingHandler() ingest.Handler {
	logPacket := func(verb string) func(*packet.Packet) {
		return func(p *packet.Packet) {
			log.Debugf("%s from %s at (%.3f, %.3f)", verb, p.ID, p.X, p.Y)
		}
	}
	return ingest.Handler{
		OnClick:   logPacket("click"),
		OnHover:   logPacket("hover"),
		OnDrag:    logPacket("drag"),
		OnRelease: logPacket("release"),
	}
}
