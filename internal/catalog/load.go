package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// courseFile mirrors the on-disk layout of an importable course.
type courseFile struct {
	Modules []Module `json:"modules"`
}

// LoadFile parses and validates a JSON course file and registers its
// modules in the catalog.
func LoadFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read course file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("course file %s: invalid JSON: %w", path, err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile course schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("course file %s: schema validation failed: %w", path, err)
	}

	var cf courseFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return fmt.Errorf("course file %s: %w", path, err)
	}

	if err := Register(cf.Modules); err != nil {
		return fmt.Errorf("course file %s: %w", path, err)
	}
	return nil
}

// LoadDir loads every *.json course file in dir, in lexical order.
// A missing directory is not an error.
func LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read course dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		if err := LoadFile(filepath.Join(dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// getCompiledSchema compiles the course schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(courseSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://course.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}
