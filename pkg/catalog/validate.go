package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	sjsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

// ValidationError represents a single validation error with location context.
type ValidationError struct {
	Phase    string `json:"phase"` // structural, semantic
	Path     string `json:"path"`  // JSON-path-like location (e.g., "0/configurationSchemaSets/1")
	Message  string `json:"message"`
	Severity string `json:"severity"` // error, warning
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Phase, e.Path, e.Message)
}

// ValidateContentTypesFile checks a content-types.json file structurally
// (well-formed JSON) and semantically (against the reflected catalog schema).
func ValidateContentTypesFile(path string) []*ValidationError {
	schemaJSON, err := ExportContentTypesSchema()
	if err != nil {
		return []*ValidationError{semanticError("", fmt.Sprintf("generate schema: %v", err))}
	}
	return validateFile(path, "content-types.json", schemaJSON)
}

// ValidateSectionsFile checks a sections.json file the same way.
func ValidateSectionsFile(path string) []*ValidationError {
	schemaJSON, err := ExportSectionsSchema()
	if err != nil {
		return []*ValidationError{semanticError("", fmt.Sprintf("generate schema: %v", err))}
	}
	return validateFile(path, "sections.json", schemaJSON)
}

func validateFile(path, resource string, schemaJSON []byte) []*ValidationError {
	data, err := os.ReadFile(path)
	if err != nil {
		return []*ValidationError{{
			Phase:    "structural",
			Message:  err.Error(),
			Severity: "error",
		}}
	}

	doc, err := sjsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return []*ValidationError{{
			Phase:    "structural",
			Message:  fmt.Sprintf("parse %s: %v", path, err),
			Severity: "error",
		}}
	}

	var schemaDoc any
	if err := json.Unmarshal(schemaJSON, &schemaDoc); err != nil {
		return []*ValidationError{semanticError("", fmt.Sprintf("unmarshal schema: %v", err))}
	}

	c := sjsonschema.NewCompiler()
	if err := c.AddResource(resource, schemaDoc); err != nil {
		return []*ValidationError{semanticError("", fmt.Sprintf("add schema resource: %v", err))}
	}
	sch, err := c.Compile(resource)
	if err != nil {
		return []*ValidationError{semanticError("", fmt.Sprintf("compile schema: %v", err))}
	}

	if err := sch.Validate(doc); err != nil {
		var errs []*ValidationError
		if ve, ok := err.(*sjsonschema.ValidationError); ok {
			for _, cause := range flattenValidationErrors(ve) {
				errs = append(errs, semanticError(
					strings.Join(cause.InstanceLocation, "/"),
					fmt.Sprintf("%v", cause.ErrorKind)))
			}
		} else {
			errs = append(errs, semanticError("", err.Error()))
		}
		return errs
	}
	return nil
}

func semanticError(path, msg string) *ValidationError {
	return &ValidationError{Phase: "semantic", Path: path, Message: msg, Severity: "error"}
}

// flattenValidationErrors recursively collects all leaf validation errors.
func flattenValidationErrors(ve *sjsonschema.ValidationError) []*sjsonschema.ValidationError {
	if len(ve.Causes) == 0 {
		return []*sjsonschema.ValidationError{ve}
	}
	var flat []*sjsonschema.ValidationError
	for _, cause := range ve.Causes {
		flat = append(flat, flattenValidationErrors(cause)...)
	}
	return flat
}
