package survey

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlath-basins/basin"
	"github.com/katalvlaran/lvlath-basins/heightmap"
)

// Dataset is a named heightmap. Test datasets print with a "test " prefix.
type Dataset struct {
	Name string
	Test bool
	Map  *heightmap.HeightMap
}

// Result holds both metrics for one dataset.
type Result struct {
	Dataset  Dataset
	RiskSum  int
	Product  int
	LowCount int
}

// Analyze computes both metrics for d from a single low-point scan.
func Analyze(d Dataset, top int, opts ...basin.Option) (Result, error) {
	if d.Map == nil {
		return Result{}, fmt.Errorf("%s: %w", d.Name, ErrNilMap)
	}
	lows := d.Map.LowPoints()
	basins, err := basin.FromSeeds(d.Map, lows, opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", d.Name, err)
	}
	product, err := TopProduct(basin.Sizes(basins), top)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", d.Name, err)
	}

	return Result{
		Dataset:  d,
		RiskSum:  riskSum(d.Map, lows),
		Product:  product,
		LowCount: len(lows),
	}, nil
}

// Line formats a single metric the way it is printed.
func (r Result) Line(value int) string {
	if r.Dataset.Test {
		return fmt.Sprintf("test %d", value)
	}
	return fmt.Sprintf("%d", value)
}

// WriteReport prints every part 1 line, then every part 2 line, in the
// order the results are given.
func WriteReport(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Line(r.RiskSum)); err != nil {
			return err
		}
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r.Line(r.Product)); err != nil {
			return err
		}
	}

	return nil
}
