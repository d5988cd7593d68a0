package questionnaire

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

const documentSchemaURL = "schema://answers.json"

// RecordError reports an answer document that cannot become a complete record.
type RecordError struct {
	// Keys lists the fields whose answers were rejected, in field order.
	// Empty when the document failed before per-field parsing.
	Keys []Key
	Err  error
}

func (e *RecordError) Error() string {
	if len(e.Keys) == 0 {
		return fmt.Sprintf("invalid answer document: %v", e.Err)
	}
	names := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		names[i] = string(k)
	}
	return fmt.Sprintf("invalid answers for %s: %v", strings.Join(names, ", "), e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ErrUnparsable marks answers the field parsers rejected.
var ErrUnparsable = errors.New("unparsable answer")

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// DocumentSchema returns the JSON Schema for an answer document: one
// property per field, all required, no extras.
func DocumentSchema() map[string]any {
	props := make(map[string]any, FieldCount)
	required := make([]any, 0, FieldCount)
	for _, f := range fields {
		var prop map[string]any
		switch f.Kind {
		case KindNumber:
			prop = map[string]any{"type": []any{"number", "string"}}
		case KindYesNo:
			prop = map[string]any{"type": []any{"boolean", "string"}}
		default:
			prop = map[string]any{"type": []any{"string", "number"}, "minLength": 1}
		}
		prop["description"] = f.Prompt
		props[string(f.Key)] = prop
		required = append(required, string(f.Key))
	}
	return map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

func documentValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		// Round-trip through encoding/json so the compiler sees plain
		// JSON values (float64, []any) rather than Go literals.
		defBytes, err := json.Marshal(DocumentSchema())
		if err != nil {
			schemaErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			schemaErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(documentSchemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(documentSchemaURL)
	})
	return compiledSchema, schemaErr
}

// LoadRecord decodes a JSON answer document into a complete record.
// Every answer goes through its field's parser, so strings such as
// "-25%" or "sí" are accepted exactly as they would be in an interview.
func LoadRecord(r io.Reader) (Record, error) {
	var doc any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, &RecordError{Err: fmt.Errorf("decode JSON: %w", err)}
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, &RecordError{Err: errors.New("decode JSON: unexpected content after the answer document")}
	}
	return recordFromDocument(doc)
}

// LoadRecordYAML is LoadRecord for YAML answer documents.
func LoadRecordYAML(r io.Reader) (Record, error) {
	var raw any
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, &RecordError{Err: fmt.Errorf("decode YAML: %w", err)}
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, &RecordError{Err: errors.New("decode YAML: expected a single answer document")}
	}
	// Normalize to the JSON data model (float64 numbers, string keys).
	b, err := json.Marshal(raw)
	if err != nil {
		return nil, &RecordError{Err: fmt.Errorf("convert YAML: %w", err)}
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, &RecordError{Err: fmt.Errorf("convert YAML: %w", err)}
	}
	return recordFromDocument(doc)
}

func recordFromDocument(doc any) (Record, error) {
	schema, err := documentValidator()
	if err != nil {
		return nil, fmt.Errorf("compile answer schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, &RecordError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	obj := doc.(map[string]any)
	rec := make(Record, FieldCount)
	var rejected []Key
	for _, f := range fields {
		v, ok := valueFromJSON(f, obj[string(f.Key)])
		if !ok {
			rejected = append(rejected, f.Key)
			continue
		}
		rec[f.Key] = v
	}
	if len(rejected) > 0 {
		return nil, &RecordError{Keys: rejected, Err: ErrUnparsable}
	}
	return rec, nil
}

func valueFromJSON(f Field, raw any) (Value, bool) {
	switch v := raw.(type) {
	case float64:
		switch f.Kind {
		case KindNumber:
			return NumberValue(v), true
		case KindText:
			return Parse(f.Kind, strconv.FormatFloat(v, 'f', -1, 64))
		default:
			return Value{}, false
		}
	case bool:
		if f.Kind != KindYesNo {
			return Value{}, false
		}
		return BoolValue(v), true
	case string:
		return Parse(f.Kind, v)
	default:
		return Value{}, false
	}
}
