package codec

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/runoshun/taskmaster/internal/domain"
)

// maxLineSize bounds a single JSON line.
const maxLineSize = 1 << 20

// JSONL stores one JSON object per line.
type JSONL struct{}

// Ensure JSONL implements Codec.
var _ Codec = JSONL{}

// Name returns "jsonl".
func (JSONL) Name() string { return FormatJSONL }

// Encode writes one JSON object per task, each terminated by a newline.
func (JSONL) Encode(w io.Writer, tasks []domain.Task) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range toRecords(tasks) {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode task %d: %w", r.ID, err)
		}
	}
	return nil
}

// Decode reads the input line by line. Blank lines are ignored, lines that are
// not a complete record or longer than maxLineSize are skipped.
func (JSONL) Decode(r io.Reader) Result {
	var res Result
	br := bufio.NewReaderSize(r, 64*1024)

	for {
		line, tooLong, err := readLine(br)
		switch {
		case tooLong:
			res.Skipped++
		case len(bytes.TrimSpace(line)) > 0:
			if task, ok := decodeLine(bytes.TrimSpace(line)); ok {
				res.Tasks = append(res.Tasks, task)
			} else {
				res.Skipped++
			}
		}
		// A read error ends the scan; what was read so far is kept.
		if err != nil {
			return res
		}
	}
}

// readLine returns the next line without its terminator. Lines longer than
// maxLineSize are consumed but not returned, and tooLong is set.
func readLine(br *bufio.Reader) (line []byte, tooLong bool, err error) {
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			return line, tooLong, err
		}
		if !tooLong {
			if len(line)+len(chunk) > maxLineSize {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}
		if !isPrefix {
			return line, tooLong, nil
		}
	}
}

func decodeLine(line []byte) (domain.Task, bool) {
	dec := json.NewDecoder(bytes.NewReader(line))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return domain.Task{}, false
	}
	return acceptObject(obj)
}
