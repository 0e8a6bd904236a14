package checklist

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"auditpro/internal/domain"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://auditpro.local/schemas/checklist.schema.json"

//go:embed checklist.schema.json
var schemaSource string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, strings.NewReader(schemaSource)); err != nil {
			schemaErr = fmt.Errorf("failed to add checklist schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Violation is one schema failure at a JSON path of the payload.
type Violation struct {
	Path    string
	Message string
}

// Validate checks the normalized payload before it is persisted. It only
// checks structure: unknown question types and min/max on non-rating
// questions are accepted. Failures match errors.Is(err, ErrInvalidFormat).
func Validate(def *domain.ChecklistDefinition) error {
	if def == nil {
		return ErrInvalidFormat
	}
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	if err := schema.Validate(doc); err != nil {
		var violations []Violation
		collectViolations(&violations, err)
		msgs := make([]string, 0, len(violations))
		for _, v := range violations {
			msgs = append(msgs, v.Path+": "+v.Message)
		}
		return fmt.Errorf("%w: %s", ErrInvalidFormat, strings.Join(msgs, "; "))
	}
	return nil
}

func collectViolations(out *[]Violation, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		*out = append(*out, Violation{Message: err.Error()})
		return
	}
	if len(ve.Causes) == 0 {
		*out = append(*out, Violation{Path: ve.InstanceLocation, Message: ve.Message})
		return
	}
	for _, cause := range ve.Causes {
		collectViolations(out, cause)
	}
}
