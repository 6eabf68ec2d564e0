package model

import (
	_ "embed"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/profile.schema.json
var profileSchema []byte

var schemaLoader = gojsonschema.NewBytesLoader(profileSchema)

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "schema validation failed: " + strings.Join(e.Problems, "; ")
}

// Validate checks a JSON document against the embedded profile schema.
func Validate(raw []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return err
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
