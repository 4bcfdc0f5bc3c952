package selection

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/ImGajeed76/datenight/pkg/datenight/bank"
)

var ErrUnknownCategory = errors.New("unknown category")

// Engine draws random questions and categories from a bank. It is not safe
// for concurrent use.
type Engine struct {
	bank *bank.Bank
	rng  *rand.Rand
}

// New creates an engine drawing from b with the given random source.
func New(b *bank.Bank, src rand.Source) *Engine {
	return &Engine{
		bank: b,
		rng:  rand.New(src),
	}
}

// NewSeeded creates an engine seeded with seed, or with the wall clock when
// seed is zero.
func NewSeeded(b *bank.Bank, seed int64) *Engine {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(b, rand.NewSource(seed))
}

// Bank returns the bank the engine draws from.
func (e *Engine) Bank() *bank.Bank {
	return e.bank
}

// PickQuestion returns a uniformly random question of the given category.
func (e *Engine) PickQuestion(category string) (bank.Question, error) {
	questions := e.bank.Questions(category)
	if len(questions) == 0 {
		return bank.Question{}, fmt.Errorf("%q: %w", category, ErrUnknownCategory)
	}
	return bank.Question{
		Category: category,
		Text:     questions[e.rng.Intn(len(questions))],
	}, nil
}

// PickOtherCategory returns a uniformly random category other than current.
// current does not need to exist in the bank.
func (e *Engine) PickOtherCategory(current string) (string, error) {
	if err := e.bank.Require(2); err != nil {
		return "", err
	}

	others := make([]string, 0, e.bank.Len())
	for _, name := range e.bank.Categories() {
		if name != current {
			others = append(others, name)
		}
	}
	return others[e.rng.Intn(len(others))], nil
}

// PickCategory returns a uniformly random category.
func (e *Engine) PickCategory() string {
	names := e.bank.Categories()
	return names[e.rng.Intn(len(names))]
}

// PickAny draws a random category and then a random question from it.
func (e *Engine) PickAny() bank.Question {
	q, err := e.PickQuestion(e.PickCategory())
	if err != nil {
		// Every category of a validated bank has questions.
		panic(err)
	}
	return q
}
