package survey

import (
	"encoding/json"
	"io"
	"time"

	"github.com/lox/patience/internal/fileutil"
)

// Document is the JSON form of a Report
type Document struct {
	RunID    string          `json:"run_id"`
	Metadata DocumentMeta    `json:"metadata"`
	Config   DocumentConfig  `json:"configuration"`
	Results  DocumentResults `json:"results"`
}

// DocumentMeta contains run timing
type DocumentMeta struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds float64   `json:"duration_seconds"`
	DealsPerSecond  float64   `json:"deals_per_second,omitempty"`
}

// DocumentConfig records the rules and batch settings
type DocumentConfig struct {
	Build       string `json:"build"`
	EmptyColumn string `json:"empty_column"`
	Draw        int    `json:"draw"`
	Deals       int    `json:"deals"`
	Workers     int    `json:"workers"`
	FirstSeed   int64  `json:"first_seed"`
}

// DocumentResults contains the aggregated outcome
type DocumentResults struct {
	FoundationMean   float64 `json:"foundation_mean"`
	FoundationStdDev float64 `json:"foundation_stddev"`
	CI95Low          float64 `json:"ci_95_low"`
	CI95High         float64 `json:"ci_95_high"`
	FoundationMedian float64 `json:"foundation_median"`
	FoundationP90    float64 `json:"foundation_p90"`
	MaxFoundation    int     `json:"max_foundation"`
	MaxFoundSeed     int64   `json:"max_foundation_seed"`
	Done             int     `json:"done"`
	DoneRate         float64 `json:"done_rate"`
	Cleared          int     `json:"cleared"`
	HiddenMean       float64 `json:"hidden_mean"`
	Distinct         int     `json:"distinct_states"`
}

// Document builds the JSON form of r
func (r *Report) Document() Document {
	s := &r.Stats
	low, high := s.ConfidenceInterval95()

	doc := Document{
		RunID: r.ID,
		Metadata: DocumentMeta{
			StartTime:       r.Started,
			EndTime:         r.Started.Add(r.Elapsed),
			DurationSeconds: r.Elapsed.Seconds(),
		},
		Config: DocumentConfig{
			Build:       r.Rules.Build.String(),
			EmptyColumn: r.Rules.EmptyColumn.String(),
			Draw:        r.Rules.Draw,
			Deals:       s.Deals,
			Workers:     r.Workers,
			FirstSeed:   r.Seed,
		},
		Results: DocumentResults{
			FoundationMean:   s.Mean(),
			FoundationStdDev: s.StdDev(),
			CI95Low:          low,
			CI95High:         high,
			FoundationMedian: s.Median(),
			FoundationP90:    s.Percentile(0.9),
			MaxFoundation:    s.MaxFound,
			MaxFoundSeed:     s.MaxFoundSeed,
			Done:             s.Done,
			DoneRate:         s.DoneRate(),
			Cleared:          s.Cleared,
			Distinct:         r.Distinct,
		},
	}
	if r.Elapsed > 0 {
		doc.Metadata.DealsPerSecond = float64(s.Deals) / r.Elapsed.Seconds()
	}
	if s.Deals > 0 {
		doc.Results.HiddenMean = float64(s.HiddenTotal) / float64(s.Deals)
	}
	return doc
}

// WriteJSON writes r as indented JSON
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Document())
}

// WriteFile writes r as JSON to filename, replacing it atomically
func (r *Report) WriteFile(filename string) error {
	return fileutil.WriteAtomic(filename, 0o644, r.WriteJSON)
}
