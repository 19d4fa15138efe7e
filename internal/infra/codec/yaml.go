package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskmaster/internal/domain"
)

// YAML stores the task set as a YAML sequence of mappings.
type YAML struct{}

// Ensure YAML implements Codec.
var _ Codec = YAML{}

// Name returns "yaml".
func (YAML) Name() string { return FormatYAML }

// Encode writes all tasks as a single YAML sequence.
func (YAML) Encode(w io.Writer, tasks []domain.Task) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toRecords(tasks)); err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	return enc.Close()
}

// Decode reads a sequence of records. A single top-level mapping is read as one
// record. Anything that is not valid YAML decodes to no tasks.
func (YAML) Decode(r io.Reader) Result {
	var res Result

	data, err := io.ReadAll(r)
	if err != nil {
		return res
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil || len(doc.Content) == 0 {
		return res
	}

	root := doc.Content[0]
	var items []*yaml.Node
	switch root.Kind {
	case yaml.SequenceNode:
		items = root.Content
	case yaml.MappingNode:
		items = []*yaml.Node{root}
	default:
		return res
	}

	for _, item := range items {
		task, ok := decodeNode(item)
		if !ok {
			res.Skipped++
			continue
		}
		res.Tasks = append(res.Tasks, task)
	}
	return res
}

// decodeNode converts a mapping node into the same JSON-shaped object the
// JSONL codec produces, so both formats share one acceptance schema.
func decodeNode(n *yaml.Node) (domain.Task, bool) {
	if n.Kind != yaml.MappingNode {
		return domain.Task{}, false
	}
	obj := make(map[string]any, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, value := n.Content[i], n.Content[i+1]
		obj[key.Value] = scalarValue(value)
	}
	return acceptObject(obj)
}

// scalarValue maps a YAML value node to a JSON-compatible value. Timestamps stay
// strings so unquoted dates such as 2025-06-01 are read verbatim.
func scalarValue(n *yaml.Node) any {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	switch n.Kind {
	case yaml.ScalarNode:
	case yaml.SequenceNode:
		return []any{}
	default:
		return map[string]any{}
	}

	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return n.Value
		}
		return json.Number(strconv.FormatInt(i, 10))
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return n.Value
		}
		return json.Number(strconv.FormatFloat(f, 'f', -1, 64))
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return n.Value
		}
		return b
	default:
		return n.Value
	}
}
