// Package settingspanel is the boundary between a settings UI and the stored
// solution name. It exposes the two entry points a panel needs plus the edit
// handler and a view model, and knows nothing about any widget toolkit.
package settingspanel

import (
	"fmt"
	"log/slog"

	"ridersettings/internal/logging"
	"ridersettings/internal/solutionname"
)

// Store is the persistence the panel depends on.
type Store interface {
	Load() (string, error)
	Save(name string) error
}

// View describes what a panel renders.
type View struct {
	Label       string `json:"label"`
	Value       string `json:"solutionName"`
	Help        string `json:"help"`
	UsesDefault bool   `json:"usesDefault"`
}

// Panel wires edits through the sanitizer into the store.
type Panel struct {
	store  Store
	logger *slog.Logger
}

// New creates a panel backed by store.
func New(store Store, logger *slog.Logger) *Panel {
	return &Panel{
		store:  store,
		logger: logging.NewComponentLogger(logger, "settingspanel"),
	}
}

// GetSolutionName returns the stored override, or "" for the default name.
func (p *Panel) GetSolutionName() (string, error) {
	return p.store.Load()
}

// SetSolutionName sanitizes raw and persists the result, which it returns.
func (p *Panel) SetSolutionName(raw string) (string, error) {
	name := solutionname.Sanitize(raw)
	if err := p.save(name); err != nil {
		return "", err
	}
	return name, nil
}

// HandleEdit applies a committed edit. current is the value the panel was
// showing and edited is the text the user entered.
func (p *Panel) HandleEdit(current, edited string) (solutionname.Action, error) {
	action := solutionname.Decide(current, edited)
	if action.Kind != solutionname.ActionPersist {
		return action, nil
	}
	if err := p.save(action.Value); err != nil {
		return action, err
	}
	return action, nil
}

// View loads the stored value and assembles what the panel displays.
func (p *Panel) View() (View, error) {
	name, err := p.store.Load()
	if err != nil {
		return View{}, err
	}
	return View{
		Label:       solutionname.Label,
		Value:       name,
		Help:        solutionname.HelpText,
		UsesDefault: name == "",
	}, nil
}

func (p *Panel) save(name string) error {
	if err := p.store.Save(name); err != nil {
		logging.ErrorWithContext(p.logger, "solution name not saved",
			"solution_name_save_failed",
			logging.String("solution_name", name),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that ProjectSettings is writable"))
		return fmt.Errorf("save solution name: %w", err)
	}
	p.logger.Info("solution name updated",
		logging.String("solution_name", name),
		logging.Bool("uses_default", name == ""))
	return nil
}
