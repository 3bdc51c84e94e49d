package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Result is one backend's answer and how long it took.
type Result struct {
	Label   string
	Value   float64
	Elapsed time.Duration
}

// String renders r as "<label>:\t (<result>, <elapsed_seconds>)".
func (r Result) String() string {
	return fmt.Sprintf("%s:\t (%s, %s)", r.Label, formatFloat(r.Value), formatFloat(r.Elapsed.Seconds()))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Report is the outcome of one run.
type Report struct {
	N       int
	Seed    uint64
	Results []Result
}

type reportRecord struct {
	N       int            `json:"n" yaml:"n"`
	Seed    uint64         `json:"seed" yaml:"seed"`
	Results []resultRecord `json:"results" yaml:"results"`
}

type resultRecord struct {
	Label          string  `json:"label" yaml:"label"`
	Value          float64 `json:"value" yaml:"value"`
	ElapsedSeconds float64 `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}

func (r Report) record() reportRecord {
	rec := reportRecord{N: r.N, Seed: r.Seed, Results: make([]resultRecord, len(r.Results))}
	for i, res := range r.Results {
		rec.Results[i] = resultRecord{
			Label:          res.Label,
			Value:          res.Value,
			ElapsedSeconds: res.Elapsed.Seconds(),
		}
	}
	return rec
}

// Format selects how a report is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a name to a Format. The empty string means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, s)
	}
}

// Write renders r to w in format f.
func (r Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText, "":
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	case FormatYAML:
		return r.WriteYAML(w)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, f)
	}
}

// WriteText writes one line per result.
func (r Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		if _, err := fmt.Fprintln(w, res.String()); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes r as an indented JSON object.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.record())
}

// WriteYAML writes r as a YAML document.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r.record()); err != nil {
		return err
	}
	return enc.Close()
}
