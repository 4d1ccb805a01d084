package catalog

import "github.com/asouza/lorito/internal/exercise"

// Lesson is an ordered, named group of exercises within a category.
// Content is immutable: loaded once at startup and never mutated.
type Lesson struct {
	ID        string              `json:"id"`
	Category  string              `json:"category"`
	Title     string              `json:"title"`
	Exercises []exercise.Exercise `json:"exercises"`
}

// Catalog is the static, versioned lesson content shipped with the app.
type Catalog struct {
	Course  string   `json:"course"`
	Mascot  string   `json:"mascot"`
	Version int      `json:"version"`
	Lessons []Lesson `json:"lessons"`
}
