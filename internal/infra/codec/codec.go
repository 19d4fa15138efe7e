// Package codec serializes task sets to and from the on-disk record formats.
//
// Every format stores one record per task with the keys id, title, priority,
// due and status. Decoding is tolerant: records that are missing a key or carry
// out-of-range values are skipped, never reported as errors.
package codec

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/runoshun/taskmaster/internal/domain"
)

// Format names.
const (
	FormatJSONL = "jsonl"
	FormatYAML  = "yaml"
)

// Codec encodes and decodes whole task sets.
type Codec interface {
	// Name returns the format name.
	Name() string

	// Encode writes one record per task.
	Encode(w io.Writer, tasks []domain.Task) error

	// Decode reads every acceptable record. It never fails; unreadable
	// input decodes to nothing.
	Decode(r io.Reader) Result
}

// Result is the outcome of a tolerant decode.
type Result struct {
	Tasks   []domain.Task
	Skipped int // Records dropped because they were malformed or incomplete
}

// record is the persisted shape of a task.
// Due is a pointer so an absent date is written as an explicit null.
type record struct {
	Due      *string `json:"due" yaml:"due"`
	Title    string  `json:"title" yaml:"title"`
	ID       int     `json:"id" yaml:"id"`
	Priority int     `json:"priority" yaml:"priority"`
	Status   int     `json:"status" yaml:"status"`
}

func toRecord(t domain.Task) record {
	r := record{
		ID:       t.ID,
		Title:    t.Title,
		Priority: int(t.Priority),
		Status:   int(t.Status),
	}
	if t.Due != nil {
		s := t.Due.String()
		r.Due = &s
	}
	return r
}

func toRecords(tasks []domain.Task) []record {
	out := make([]record, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toRecord(t))
	}
	return out
}

// New returns the codec for the given format name.
func New(format string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSONL, "json", "":
		return JSONL{}, nil
	case FormatYAML, "yml":
		return YAML{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownFileFormat, format)
	}
}

// ForPath returns the codec for format, or infers it from the path's extension
// when format is empty (.yaml and .yml select YAML, anything else JSON lines).
func ForPath(path, format string) (Codec, error) {
	if format != "" {
		return New(format)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML{}, nil
	default:
		return JSONL{}, nil
	}
}
