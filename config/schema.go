package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	schemagen "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/obinnaokechukwu/fmodgo/result"
)

const schemaURL = "fmodgo-config.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// Schema returns the JSON schema every configuration document must satisfy.
func Schema() ([]byte, error) {
	r := &schemagen.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
		DoNotReference: true,
	}
	return json.MarshalIndent(r.Reflect(&Config{}), "", "  ")
}

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := Schema()
		if err != nil {
			compileErr = fmt.Errorf("config: build schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, bytes.NewReader(raw)); err != nil {
			compileErr = fmt.Errorf("config: add schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded YAML document against Schema.
func validateDocument(doc any) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}

	// The validator expects encoding/json value types.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: prepare validation: %w", err)
	}
	var obj any
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("config: prepare validation: %w", err)
	}

	if err := sch.Validate(obj); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return fmt.Errorf("config: %w: %s", result.ErrInvalidArgument, ve.Error())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
