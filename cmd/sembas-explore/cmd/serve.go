package cmd

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/toazbenj/sembas-go/adherer"
	"github.com/toazbenj/sembas-go/explorer"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/remote"
	"github.com/toazbenj/sembas-go/report"
	"github.com/toazbenj/sembas-go/search"
)

var (
	serveAddr string
	serveDim  int
	serveOut  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Explore the boundary of a remote system under test",
	Long: `serve listens on a TCP address for a remote classifier connection,
performs the dimension handshake, and then runs the same seed-acquisition
/ surfacing / mesh-exploration pipeline as "explore" against it.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":7890", "address to listen on for the remote classifier")
	serveCmd.Flags().IntVar(&serveDim, "dim", 3, "dimensionality the remote classifier operates in")
	serveCmd.Flags().StringVarP(&serveOut, "output", "o", "", "write the resulting report as JSON to this path (default: stdout)")
}

func runServe(cmd *cobra.Command, args []string) error {
	log := Logger()

	cfg := report.DefaultExplorationConfig()
	if p := configPath(); p != "" {
		loaded, err := report.LoadConfig(p)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log.Info("waiting for remote classifier", "addr", serveAddr, "dim", serveDim)
	rc, err := remote.Listen(serveAddr, serveDim)
	if err != nil {
		return fmt.Errorf("serve: accepting remote classifier: %w", err)
	}
	defer rc.Close()

	session := remote.NewSession(rc, log)
	log.Info("remote classifier connected")

	domain := geometry.Normalized(serveDim)

	if err := session.Announce("GLOBAL_SEARCH"); err != nil {
		return fmt.Errorf("serve: announcing global search phase: %w", err)
	}
	mc := search.NewMonteCarloSearch(domain, cfg.Seed)
	pair, err := search.FindInitialBoundaryPair(mc, cfg.MaxSamples, session)
	if err != nil {
		return fmt.Errorf("serve: seed acquisition failed: %w", err)
	}

	if err := session.Announce("SURFACE_SEARCH"); err != nil {
		return fmt.Errorf("serve: announcing surface search phase: %w", err)
	}
	root, err := search.BinarySurfaceSearch(cfg.JumpDistance, pair.T, pair.X, cfg.MaxSamples, session)
	if err != nil {
		return fmt.Errorf("serve: surfacing failed: %w", err)
	}

	if err := session.Announce("BOUNDARY_EXPL"); err != nil {
		return fmt.Errorf("serve: announcing boundary exploration phase: %w", err)
	}
	factory := adherer.NewConstantAdhererFactory(
		cfg.DeltaAngleDeg*math.Pi/180,
		cfg.MaxRotateDeg*math.Pi/180,
	)
	e := explorer.New(cfg.JumpDistance, root, cfg.Margin, factory)

	for i := 0; i < cfg.MaxSamples && len(e.Boundary()) < cfg.MaxBoundary; i++ {
		s, err := e.Step(session)
		if err != nil {
			continue
		}
		if s == nil {
			break
		}
	}

	log.Info("exploration complete", "boundary_points", len(e.Boundary()))

	status := e.Describe("ConstantAdherer", map[string]float64{
		"delta_angle": cfg.DeltaAngleDeg * math.Pi / 180,
		"max_rotate":  cfg.MaxRotateDeg * math.Pi / 180,
	})

	return writeReport(status, serveOut)
}
