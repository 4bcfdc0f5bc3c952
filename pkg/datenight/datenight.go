package datenight

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/ImGajeed76/datenight/pkg/datenight/bank"
	"github.com/ImGajeed76/datenight/pkg/datenight/config"
	"github.com/ImGajeed76/datenight/pkg/datenight/console"
	"github.com/ImGajeed76/datenight/pkg/datenight/selection"
	"github.com/ImGajeed76/datenight/pkg/datenight/session"
)

// NewPolicy builds the session policy selected by cfg.
func NewPolicy(cfg *config.Config, engine *selection.Engine) (session.Policy, error) {
	return session.NewPolicy(engine, session.Options{
		Mode:     cfg.Mode,
		Length:   cfg.SessionLength,
		Category: cfg.Category,
	})
}

// NewModel prepares the card view for cfg and b, drawing the first question.
func NewModel(cfg *config.Config, b *bank.Bank, log *zap.Logger) (*console.CardModel, error) {
	engine := selection.NewSeeded(b, cfg.Seed)

	policy, err := NewPolicy(cfg, engine)
	if err != nil {
		return nil, err
	}
	if err := b.Require(policy.MinCategories()); err != nil {
		return nil, fmt.Errorf("%s mode: %w", policy.Name(), err)
	}

	start, err := policy.Start()
	if err != nil {
		return nil, fmt.Errorf("starting %s mode: %w", policy.Name(), err)
	}

	return console.NewCardModel(policy, start, b, console.CardOptions{
		Threshold:  cfg.Threshold,
		CellWidth:  cfg.Display.CellWidth,
		CellHeight: cfg.Display.CellHeight,
		CardWidth:  cfg.Display.CardWidth,
	}, log), nil
}

// Run shows the question card until the user quits and returns the final
// session state.
func Run(cfg *config.Config, b *bank.Bank, log *zap.Logger) (session.State, error) {
	if log == nil {
		log = zap.NewNop()
	}

	m, err := NewModel(cfg, b, log)
	if err != nil {
		return session.State{}, err
	}

	log.Info("starting",
		zap.String("mode", cfg.Mode),
		zap.Float64("threshold", m.Threshold()),
		zap.Int("categories", b.Len()),
		zap.Int64("seed", cfg.Seed),
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	final, err := p.Run()
	if err != nil {
		return m.State(), err
	}
	if fm, ok := final.(*console.CardModel); ok {
		m = fm
	}

	state := m.State()
	log.Info("exiting",
		zap.Int("cards", state.Len()),
		zap.Bool("summary", state.Summary()),
		zap.Any("tallies", state.Tallies()),
	)
	return state, nil
}
