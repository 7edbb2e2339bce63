// Package validate checks assembled router outputs against the published
// structural contract. The contract is a versioned JSON Schema document
// kept next to this file so contract changes stay reviewable on their own.
package validate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed router_output.schema.json
var schemaDoc []byte

// ErrContract marks a record that does not conform to the contract. This is
// a defect in the pipeline, not a user-facing condition.
var ErrContract = errors.New("router output contract violation")

var schema = mustCompile()

func mustCompile() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	const name = "router_output.schema.json"
	if err := c.AddResource(name, bytes.NewReader(schemaDoc)); err != nil {
		panic(fmt.Errorf("validate: add schema: %w", err))
	}
	s, err := c.Compile(name)
	if err != nil {
		panic(fmt.Errorf("validate: compile schema: %w", err))
	}
	return s
}

// RouterOutput validates v against the contract. It accepts any value that
// marshals to the RouterOutput JSON shape.
func RouterOutput(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrContract, err)
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrContract, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrContract, err)
	}
	return nil
}
