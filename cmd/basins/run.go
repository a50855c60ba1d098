package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvlath-basins/basin"
	"github.com/katalvlaran/lvlath-basins/config"
	"github.com/katalvlaran/lvlath-basins/heightmap"
	"github.com/katalvlaran/lvlath-basins/inputs"
	"github.com/katalvlaran/lvlath-basins/survey"
)

// run analyses both datasets and writes the report only once every
// dataset has parsed and been analysed, so a failure prints nothing.
func run(w io.Writer, cfg config.Config, logger *zap.Logger) error {
	sources := []struct {
		name     string
		test     bool
		path     string
		fallback string
	}{
		{"test", true, cfg.TestInput, inputs.Test()},
		{"full", false, cfg.FullInput, inputs.Full()},
	}

	results := make([]survey.Result, 0, len(sources))
	for _, src := range sources {
		text, err := inputs.Resolve(src.path, src.fallback)
		if err != nil {
			return fmt.Errorf("%s input: %w", src.name, err)
		}
		hm, err := heightmap.Parse(text)
		if err != nil {
			return fmt.Errorf("%s input: %w", src.name, err)
		}
		logger.Debug("Parsed heightmap",
			zap.String("dataset", src.name),
			zap.Bool("embedded", src.path == ""),
			zap.Int("width", hm.Width),
			zap.Int("height", hm.Height))

		res, err := survey.Analyze(survey.Dataset{Name: src.name, Test: src.test, Map: hm},
			cfg.Top, basin.WithWall(uint8(cfg.Wall)))
		if err != nil {
			return err
		}
		logger.Info("Surveyed heightmap",
			zap.String("dataset", src.name),
			zap.Int("low_points", res.LowCount),
			zap.Int("risk_sum", res.RiskSum),
			zap.Int("basin_product", res.Product))
		results = append(results, res)
	}

	return survey.WriteReport(w, results)
}
