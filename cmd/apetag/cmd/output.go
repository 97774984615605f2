package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/apetag"
)

// tagRecord is the printable form of one file's tag.
type tagRecord struct {
	Path        string       `json:"path" yaml:"path"`
	Container   string       `json:"container,omitempty" yaml:"container,omitempty"`
	Fingerprint string       `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Items       []itemRecord `json:"items,omitempty" yaml:"items,omitempty"`
	Warnings    []string     `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Version     uint32       `json:"version,omitempty" yaml:"version,omitempty"`
	Count       int          `json:"count" yaml:"count"`
	Skipped     int          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Found       bool         `json:"found" yaml:"found"`
}

type itemRecord struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

func newTagRecord(path string, tag *apetag.Tag) tagRecord {
	rec := tagRecord{Path: path}
	if tag == nil {
		return rec
	}

	rec.Found = true
	rec.Container = tag.Container.String()
	rec.Version = tag.Header.Version
	rec.Count = tag.Count
	rec.Skipped = tag.Skipped
	rec.Fingerprint = strconv.FormatUint(tag.Fingerprint(), 16)
	for _, item := range tag.Items {
		rec.Items = append(rec.Items, itemRecord{Key: item.Key, Value: item.Text()})
	}
	for _, w := range tag.Warnings {
		rec.Warnings = append(rec.Warnings, w.String())
	}
	return rec
}

// encoder writes records in one output format.
type encoder struct {
	encode func([]tagRecord) error
}

func newEncoder(format string, w io.Writer) (*encoder, error) {
	switch format {
	case "text", "":
		return &encoder{encode: func(records []tagRecord) error { return writeText(w, records) }}, nil
	case "json":
		return &encoder{encode: func(records []tagRecord) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}}, nil
	case "yaml":
		return &encoder{encode: func(records []tagRecord) error {
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			if err := enc.Encode(records); err != nil {
				return err
			}
			return enc.Close()
		}}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func writeText(w io.Writer, records []tagRecord) error {
	for i, rec := range records {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if !rec.Found {
			if _, err := fmt.Fprintf(w, "%s: no APE tag\n", rec.Path); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(w, "%s: %s, APE v%.1f, %d items (%s)\n",
			rec.Path, rec.Container, float64(rec.Version)/1000, rec.Count, rec.Fingerprint); err != nil {
			return err
		}
		for _, item := range rec.Items {
			if _, err := fmt.Fprintf(w, "  %s=%s\n", item.Key, item.Value); err != nil {
				return err
			}
		}
		for _, warn := range rec.Warnings {
			if _, err := fmt.Fprintf(w, "  warning: %s\n", warn); err != nil {
				return err
			}
		}
	}
	return nil
}
