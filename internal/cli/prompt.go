package cli

import (
	"fmt"

	"github.com/manifoldco/promptui"
)

// Question is one wizard prompt.
type Question struct {
	Label    string
	Default  string
	Secret   bool
	Validate func(string) error
}

// Prompter asks the user for values.
type Prompter interface {
	Ask(q Question) (string, error)
	Confirm(label string) (bool, error)
}

// PromptUI is the terminal Prompter.
type PromptUI struct{}

func (PromptUI) Ask(q Question) (string, error) {
	p := promptui.Prompt{
		Label:     q.Label,
		Default:   q.Default,
		AllowEdit: q.Default != "",
		Validate:  q.Validate,
	}
	if q.Secret {
		p.Mask = '*'
	}

	v, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("prompt %q failed: %w", q.Label, err)
	}
	return v, nil
}

func (PromptUI) Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	if _, err := p.Run(); err != nil {
		if err == promptui.ErrAbort {
			return false, nil
		}
		return false, fmt.Errorf("prompt %q failed: %w", label, err)
	}
	return true, nil
}
