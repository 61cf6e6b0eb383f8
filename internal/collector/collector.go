package collector

import (
	"fmt"
	"time"

	"GasWhisperer/internal/model"
)

// StaticSource returns controllable fixed data for development and testing.
type StaticSource struct {
	Base   float64
	Points []model.RecentPoint
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Recent(limit int) ([]model.RecentPoint, error) {
	if s.Points != nil {
		return lastN(s.Points, limit), nil
	}
	if limit <= 0 {
		limit = 20
	}
	return generateMockSeries(s.Base, limit, time.Now().UTC()), nil
}

// generateMockSeries produces count one-minute samples ending at end that drift
// gently around base.
func generateMockSeries(base float64, count int, end time.Time) []model.RecentPoint {
	points := make([]model.RecentPoint, count)
	for i := 0; i < count; i++ {
		p := base * (1 + float64(i-count/2)*0.01)
		points[i] = model.RecentPoint{
			Timestamp: end.Add(-time.Duration(count-1-i) * time.Minute).Format(time.RFC3339),
			GasPrice:  float64(int(p*100+0.5)) / 100,
		}
	}
	return points
}

// Collector turns source history into optimizer requests.
type Collector struct {
	Source Source
	Limit  int
}

// NewCollector creates a new Collector reading at most limit points per request.
func NewCollector(source Source, limit int) *Collector {
	return &Collector{Source: source, Limit: limit}
}

// Collect builds an OptimizeInput for tx at currentGas from the latest history.
func (c *Collector) Collect(tx string, currentGas float64) (*model.OptimizeInput, error) {
	recent, err := c.Source.Recent(c.Limit)
	if err != nil {
		return nil, fmt.Errorf("fetch recent gas from %s: %w", c.Source.Name(), err)
	}
	if recent == nil {
		recent = []model.RecentPoint{}
	}
	return &model.OptimizeInput{Tx: tx, CurrentGas: currentGas, Recent: recent}, nil
}
