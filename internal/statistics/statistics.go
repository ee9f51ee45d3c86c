package statistics

import (
	"fmt"
	"math"
	"sort"
)

// DealResult represents the outcome of reducing a single dealt game
type DealResult struct {
	Seed            int64 // Deal seed (for replay)
	FoundationCards int   // Cards sent to the foundations
	HiddenCards     int   // Tableau cards still face down
	Done            bool  // No face-down card left
	Steps           int   // Fields derived while reducing
}

// Statistics aggregates survey results
type Statistics struct {
	Deals  int
	Sum    float64
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Foundation card counts, for median/percentiles

	Done         int   // Deals with no face-down card left
	Cleared      int   // Deals with all 52 cards home
	HiddenTotal  int   // Face-down cards left over all deals
	Steps        int   // Fields derived over all deals
	MaxFound     int   // Largest foundation count seen
	MaxFoundSeed int64 // Seed that produced MaxFound
}

// Add incorporates a new deal result into the statistics
func (s *Statistics) Add(result DealResult) {
	v := float64(result.FoundationCards)
	s.Deals++
	s.Sum += v
	s.Sum2 += v * v
	s.Values = append(s.Values, v)

	if result.Done {
		s.Done++
	}
	if result.FoundationCards == 52 {
		s.Cleared++
	}
	s.HiddenTotal += result.HiddenCards
	s.Steps += result.Steps

	if s.Deals == 1 || result.FoundationCards > s.MaxFound {
		s.MaxFound = result.FoundationCards
		s.MaxFoundSeed = result.Seed
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if other == nil || other.Deals == 0 {
		return
	}
	if s.Deals == 0 || other.MaxFound > s.MaxFound {
		s.MaxFound = other.MaxFound
		s.MaxFoundSeed = other.MaxFoundSeed
	}
	s.Deals += other.Deals
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.Done += other.Done
	s.Cleared += other.Cleared
	s.HiddenTotal += other.HiddenTotal
	s.Steps += other.Steps
}

// Mean returns the mean number of foundation cards per deal
func (s *Statistics) Mean() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.Sum / float64(s.Deals)
}

// Variance returns the sample variance
func (s *Statistics) Variance() float64 {
	if s.Deals < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Deals)*mean*mean) / float64(s.Deals-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Deals == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Deals))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// DoneRate returns the fraction of deals with every tableau card face up
func (s *Statistics) DoneRate() float64 {
	if s.Deals == 0 {
		return 0
	}
	return float64(s.Done) / float64(s.Deals)
}

// Median returns the median foundation count
func (s *Statistics) Median() float64 {
	return s.Percentile(0.5)
}

// Percentile returns the value at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the counters agree with each other
func (s *Statistics) Validate() error {
	if s.Deals <= 0 {
		return fmt.Errorf("invalid deals count: %d", s.Deals)
	}
	if len(s.Values) != s.Deals {
		return fmt.Errorf("values array length (%d) does not match deals count (%d)",
			len(s.Values), s.Deals)
	}
	if s.Done > s.Deals || s.Cleared > s.Deals {
		return fmt.Errorf("done (%d) or cleared (%d) exceeds deals (%d)", s.Done, s.Cleared, s.Deals)
	}
	if s.Cleared > s.Done {
		return fmt.Errorf("cleared (%d) exceeds done (%d)", s.Cleared, s.Done)
	}
	return nil
}
