package commands

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/kartikbazzad/gdnsh/internal/errors"
)

// keyValueConfigSchema describes gdn.CreateKeyValueCollectionBody.
const keyValueConfigSchema = `{
	"type": "object",
	"properties": {
		"stream":       {"type": "boolean"},
		"enableShards": {"type": "boolean"},
		"waitForSync":  {"type": "boolean"},
		"shardKeys":    {"type": "array", "items": {"type": "string"}},
		"blobs":        {"type": "boolean"},
		"expiration":   {"type": "boolean"},
		"group":        {"type": "boolean"}
	},
	"additionalProperties": false
}`

var loadKeyValueConfigSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(keyValueConfigSchema))
})

// validateKeyValueConfig checks configJSON is JSON shaped like a collection config.
func validateKeyValueConfig(configJSON string) error {
	schema, err := loadKeyValueConfigSchema()
	if err != nil {
		return fmt.Errorf("invalid json schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(configJSON))
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidJSON, err)
	}

	if !result.Valid() {
		var errs []string
		for _, desc := range result.Errors() {
			errs = append(errs, desc.String())
		}
		return fmt.Errorf("%w: %s", errors.ErrConfigShape, strings.Join(errs, "; "))
	}
	return nil
}
