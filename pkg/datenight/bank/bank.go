package bank

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrEmptyBank          = errors.New("question bank has no categories")
	ErrTooFewCategories   = errors.New("question bank has too few categories")
	ErrDuplicateCategory  = errors.New("duplicate category")
	ErrEmptyCategory      = errors.New("category has no questions")
	ErrInvalidCategory    = errors.New("category name cannot be empty")
	ErrInvalidColor       = errors.New("invalid category colour")
	ErrUnknownFormat      = errors.New("unknown question bank format")
	ErrOrphanQuestion     = errors.New("question outside of any category")
	ErrMalformedDirective = errors.New("malformed deck directive")
)

var colorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// fallbackPalette colours categories that come without one, in order.
var fallbackPalette = []string{"#FF6B6B", "#4ECDC4", "#FFD93D", "#6C5CE7", "#FF9F43", "#1DD1A1"}

// Category is a named bucket of related questions sharing a display colour.
type Category struct {
	Name      string   `yaml:"name"`
	Color     string   `yaml:"color"`
	Questions []string `yaml:"questions"`
}

// Question is one drawn question together with the category it came from.
type Question struct {
	Category string
	Text     string
}

// Bank is an immutable, ordered set of categories.
type Bank struct {
	categories []Category
	index      map[string]int
}

// New validates the given categories and returns a bank holding a private copy
// of them. The category order is kept.
func New(categories []Category) (*Bank, error) {
	if len(categories) == 0 {
		return nil, ErrEmptyBank
	}

	b := &Bank{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}

	for i, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category #%d: %w", i+1, ErrInvalidCategory)
		}
		if _, dup := b.index[name]; dup {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateCategory)
		}

		color := strings.TrimSpace(c.Color)
		if color == "" {
			color = fallbackPalette[i%len(fallbackPalette)]
		} else if !colorPattern.MatchString(color) {
			return nil, fmt.Errorf("%q colour %q: %w", name, color, ErrInvalidColor)
		}

		questions := make([]string, 0, len(c.Questions))
		for _, q := range c.Questions {
			if q = strings.TrimSpace(q); q != "" {
				questions = append(questions, q)
			}
		}
		if len(questions) == 0 {
			return nil, fmt.Errorf("%q: %w", name, ErrEmptyCategory)
		}

		b.index[name] = len(b.categories)
		b.categories = append(b.categories, Category{
			Name:      name,
			Color:     color,
			Questions: questions,
		})
	}

	return b, nil
}

// Len returns the number of categories.
func (b *Bank) Len() int {
	return len(b.categories)
}

// Categories returns the category names in bank order.
func (b *Bank) Categories() []string {
	names := make([]string, len(b.categories))
	for i, c := range b.categories {
		names[i] = c.Name
	}
	return names
}

// Category looks up a category by name. The returned value shares nothing with
// the bank.
func (b *Bank) Category(name string) (Category, bool) {
	i, ok := b.index[name]
	if !ok {
		return Category{}, false
	}
	c := b.categories[i]
	c.Questions = append([]string(nil), c.Questions...)
	return c, true
}

// Questions returns the question list of a category, or nil.
func (b *Bank) Questions(name string) []string {
	c, ok := b.Category(name)
	if !ok {
		return nil
	}
	return c.Questions
}

// Color returns the display colour of a category, or "" if it is unknown.
func (b *Bank) Color(name string) string {
	i, ok := b.index[name]
	if !ok {
		return ""
	}
	return b.categories[i].Color
}

// Contains reports whether q is one of the configured questions of its category.
func (b *Bank) Contains(q Question) bool {
	i, ok := b.index[q.Category]
	if !ok {
		return false
	}
	for _, text := range b.categories[i].Questions {
		if text == q.Text {
			return true
		}
	}
	return false
}

// Require fails with ErrTooFewCategories unless the bank holds at least min
// categories.
func (b *Bank) Require(min int) error {
	if len(b.categories) < min {
		return fmt.Errorf("need %d, have %d: %w", min, len(b.categories), ErrTooFewCategories)
	}
	return nil
}
