package model

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema string

// ValidationError reports why a document failed schema validation. Problems
// holds one human-readable message per violated constraint.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("resume validation failed: %s", strings.Join(e.Problems, "; "))
}

// ValidateDocument checks raw JSON against the embedded resume schema.
// A nil return means the payload is safe to unmarshal into Resume.
func ValidateDocument(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(resumeSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if res.Valid() {
		return nil
	}
	verr := &ValidationError{}
	for _, e := range res.Errors() {
		verr.Problems = append(verr.Problems, e.String())
	}
	return verr
}
