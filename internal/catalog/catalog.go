package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/asouza/lorito/internal/exercise"
)

//go:embed lessons.json
var rawCatalog []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// Load parses and validates the embedded catalog.
func Load() (*Catalog, error) {
	return Parse(rawCatalog)
}

// Parse validates raw catalog JSON against the content schema and decodes
// it. Content errors are caught here, at startup, not mid-lesson.
func Parse(data []byte) (*Catalog, error) {
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	schema, err := compiled()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &c, nil
}

func compiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a parsed JSON value; round-trip the map literal.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = err
			return
		}
		defParsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(defBytes))
		if err != nil {
			compileErr = err
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = err
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Lesson returns the lesson with the given id.
func (c *Catalog) Lesson(id string) (*Lesson, bool) {
	for i := range c.Lessons {
		if c.Lessons[i].ID == id {
			return &c.Lessons[i], true
		}
	}
	return nil, false
}

// Categories returns the distinct lesson categories in catalog order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var out []string
	for _, l := range c.Lessons {
		if !seen[l.Category] {
			seen[l.Category] = true
			out = append(out, l.Category)
		}
	}
	return out
}

// ByCategory returns lessons in the given category; all lessons when the
// category is empty.
func (c *Catalog) ByCategory(category string) []Lesson {
	if category == "" {
		return c.Lessons
	}
	var out []Lesson
	for _, l := range c.Lessons {
		if l.Category == category {
			out = append(out, l)
		}
	}
	return out
}

// QuickBank returns the pool quick tests draw from: every exercise in the
// catalog except pair-matching ones, which don't fit the one-question
// rhythm of a quick test.
func (c *Catalog) QuickBank() []exercise.Exercise {
	var bank []exercise.Exercise
	for _, l := range c.Lessons {
		for _, ex := range l.Exercises {
			if ex.Kind == exercise.KindMatch {
				continue
			}
			bank = append(bank, ex)
		}
	}
	return bank
}

// QuickPick draws n random exercises from the quick bank, fewer if the
// bank is smaller.
func (c *Catalog) QuickPick(n int) []exercise.Exercise {
	bank := exercise.Shuffle(c.QuickBank())
	if len(bank) > n {
		bank = bank[:n]
	}
	return bank
}
