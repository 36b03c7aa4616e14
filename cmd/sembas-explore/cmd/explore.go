package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/toazbenj/sembas-go/adherer"
	"github.com/toazbenj/sembas-go/classifier"
	"github.com/toazbenj/sembas-go/explorer"
	"github.com/toazbenj/sembas-go/geometry"
	"github.com/toazbenj/sembas-go/report"
	"github.com/toazbenj/sembas-go/search"
	"github.com/toazbenj/sembas-go/sembaserr"
	"github.com/toazbenj/sembas-go/sut"
)

var (
	exploreShape  string
	exploreOutput string
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Explore the boundary of a built-in reference shape",
	Long: `explore acquires an initial boundary pair via Monte-Carlo search,
surfaces it with binary surface search, and then runs MeshExplorer to
characterize the boundary of a reference sphere or cube classifier.`,
	RunE: runExplore,
}

func init() {
	rootCmd.AddCommand(exploreCmd)

	exploreCmd.Flags().StringVar(&exploreShape, "shape", "sphere", "reference shape to explore: sphere or cube")
	exploreCmd.Flags().StringVarP(&exploreOutput, "output", "o", "", "write the resulting report as JSON to this path (default: stdout)")
}

func runExplore(cmd *cobra.Command, args []string) error {
	log := Logger()

	cfg := report.DefaultExplorationConfig()
	if p := configPath(); p != "" {
		loaded, err := report.LoadConfig(p)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	domain, err := geometry.NewDomainFromBounds(
		geometry.NewVector(cfg.DomainLow...),
		geometry.NewVector(cfg.DomainHigh...),
	)
	if err != nil {
		return fmt.Errorf("explore: invalid domain bounds: %w", err)
	}

	c, err := buildShape(exploreShape, domain)
	if err != nil {
		return err
	}

	log.Info("acquiring initial boundary pair", "seed", cfg.Seed, "max_samples", cfg.MaxSamples)
	mc := search.NewMonteCarloSearch(domain, cfg.Seed)
	pair, err := search.FindInitialBoundaryPair(mc, cfg.MaxSamples, c)
	if err != nil {
		return fmt.Errorf("explore: seed acquisition failed: %w", err)
	}

	log.Info("surfacing initial boundary pair", "jump_distance", cfg.JumpDistance)
	root, err := search.BinarySurfaceSearch(cfg.JumpDistance, pair.T, pair.X, cfg.MaxSamples, c)
	if err != nil {
		return fmt.Errorf("explore: surfacing failed: %w", err)
	}

	factory := adherer.NewConstantAdhererFactory(
		cfg.DeltaAngleDeg*math.Pi/180,
		cfg.MaxRotateDeg*math.Pi/180,
	)
	e := explorer.New(cfg.JumpDistance, root, cfg.Margin, factory)

	log.Info("beginning mesh exploration", "max_boundary_points", cfg.MaxBoundary, "max_samples", cfg.MaxSamples)
	var bleCount, oobCount int
	for i := 0; i < cfg.MaxSamples && len(e.Boundary()) < cfg.MaxBoundary; i++ {
		s, err := e.Step(c)
		if err != nil {
			if errors.Is(err, sembaserr.ErrOutOfBounds) {
				oobCount++
			} else {
				bleCount++
			}
			continue
		}
		if s == nil {
			break
		}
	}

	log.Info("exploration complete", "boundary_points", len(e.Boundary()), "ble_count", bleCount, "oob_count", oobCount)

	status := e.Describe("ConstantAdherer", map[string]float64{
		"delta_angle": cfg.DeltaAngleDeg * math.Pi / 180,
		"max_rotate":  cfg.MaxRotateDeg * math.Pi / 180,
	})

	return writeReport(status, exploreOutput)
}

func buildShape(shape string, domain geometry.Domain) (classifier.Classifier, error) {
	switch shape {
	case "sphere":
		center := domain.Low().Add(domain.High()).Scale(0.5)
		radius := domain.Dimensions().At(0) / 4
		return sut.NewSphere(center, radius, &domain), nil
	case "cube":
		low := domain.Low().Add(domain.Dimensions().Scale(0.25))
		high := domain.High().Sub(domain.Dimensions().Scale(0.25))
		shapeDomain := geometry.NewDomain(low, high)
		return sut.NewCube(shapeDomain, &domain), nil
	default:
		return nil, fmt.Errorf("explore: unknown shape %q (valid: sphere, cube)", shape)
	}
}

func writeReport(status report.ExplorationStatus, outPath string) error {
	out, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return fmt.Errorf("explore: encoding report: %w", err)
	}

	if outPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outPath, out, 0644)
}
