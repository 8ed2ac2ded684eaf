// Package report writes the optional YAML conversion report, the
// file counterpart of the converter's log output.
package report

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"atomrss/internal/feed"
)

// Report summarizes one conversion run.
type Report struct {
	Input        string        `yaml:"input"`
	Output       string        `yaml:"output"`
	ConvertedAt  time.Time     `yaml:"converted_at"`
	Items        int           `yaml:"items"`
	SkippedDates []SkippedDate `yaml:"skipped_dates,omitempty"`
}

// SkippedDate is an entry whose date text was present but unusable;
// its item went out without a pubDate.
type SkippedDate struct {
	Item  int    `yaml:"item"`
	Value string `yaml:"value"`
}

// New assembles a report from a transform result.
func New(input, output string, res *feed.Result) *Report {
	r := &Report{
		Input:       input,
		Output:      output,
		ConvertedAt: time.Now().UTC(),
		Items:       res.Items,
	}
	for _, bd := range res.BadDates {
		r.SkippedDates = append(r.SkippedDates, SkippedDate{Item: bd.Item, Value: bd.Value})
	}
	return r
}

// Write marshals the report to path.
func (r *Report) Write(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
