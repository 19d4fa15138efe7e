package codec

import (
	"encoding/json"
	"strconv"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/runoshun/taskmaster/internal/domain"
)

// recordSchemaURL names the embedded schema resource.
const recordSchemaURL = "task-record.schema.json"

// recordSchema lists the keys a record must carry verbatim. due must be present
// even when the task has no due date, as an explicit null.
const recordSchema = `{
  "type": "object",
  "required": ["id", "title", "priority", "due", "status"],
  "properties": {
    "id": {"type": "integer", "minimum": 1},
    "title": {"type": "string", "minLength": 1},
    "priority": {"type": "integer", "minimum": 0, "maximum": 3},
    "due": {"type": ["string", "null"]},
    "status": {"type": "integer", "minimum": 0, "maximum": 2}
  }
}`

var compiledRecordSchema = jsonschema.MustCompileString(recordSchemaURL, recordSchema)

// acceptObject validates a decoded record object and converts it to a task.
// Numbers must be json.Number values. ok is false for any record the schema
// rejects or whose due date does not parse.
func acceptObject(obj map[string]any) (domain.Task, bool) {
	if err := compiledRecordSchema.Validate(obj); err != nil {
		return domain.Task{}, false
	}

	id, ok := intField(obj["id"])
	if !ok {
		return domain.Task{}, false
	}
	priority, ok := intField(obj["priority"])
	if !ok {
		return domain.Task{}, false
	}
	status, ok := intField(obj["status"])
	if !ok {
		return domain.Task{}, false
	}
	title, _ := obj["title"].(string)

	task := domain.Task{
		ID:       id,
		Title:    title,
		Priority: domain.Priority(priority),
		Status:   domain.Status(status),
	}

	if s, isString := obj["due"].(string); isString {
		due, err := domain.ParseDate(s)
		if err != nil {
			return domain.Task{}, false
		}
		task.Due = &due
	}

	return task, true
}

func intField(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(n.String())
	if err != nil {
		return 0, false
	}
	return i, true
}
