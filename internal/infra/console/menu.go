package console

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	ChoiceEnableUser = "Enable a user"
	ChoiceUploadWeek = "Upload a training week"
	ChoiceExit       = "Exit"
)

const (
	menuMessage = "What do you wanna do: "
	menuHelp    = "Enable a user | Upload a training week ── Exit"
)

var ErrInvalidChoice = errors.New("unrecognised menu choice")

// Flow is one menu action. A returned error ends the program.
type Flow func(ctx context.Context) error

type menuState int

const (
	statePrompting menuState = iota
	stateDispatching
	stateExited
)

// Menu loops over the admin actions until the operator exits.
type Menu struct {
	prompter Prompter
	flows    map[string]Flow
	logger   *logrus.Entry
}

func NewMenu(p Prompter, enableUser, uploadWeek Flow, logger *logrus.Entry) *Menu {
	return &Menu{
		prompter: p,
		flows: map[string]Flow{
			ChoiceEnableUser: enableUser,
			ChoiceUploadWeek: uploadWeek,
		},
		logger: logger,
	}
}

// Run returns nil when the operator exits and the first flow or prompt
// error otherwise.
func (m *Menu) Run(ctx context.Context) error {
	state := statePrompting
	var choice string

	for state != stateExited {
		switch state {
		case statePrompting:
			if err := ctx.Err(); err != nil {
				return err
			}
			answer, err := m.prompter.Select(menuMessage, []string{ChoiceEnableUser, ChoiceUploadWeek, ChoiceExit}, menuHelp)
			if err != nil {
				return fmt.Errorf("menu prompt failed: %w", err)
			}
			choice = answer
			state = stateDispatching

		case stateDispatching:
			flow, err := m.resolve(choice)
			if err != nil {
				m.logger.WithError(err).WithField("choice", choice).Warn("Leaving menu")
				state = stateExited
				continue
			}
			if flow == nil {
				state = stateExited
				continue
			}

			logCtx := m.logger.WithField("flow", choice)
			logCtx.Debug("Flow started")
			if err := flow(ctx); err != nil {
				logCtx.WithError(err).Error("Flow failed")
				return err
			}
			state = statePrompting
		}
	}

	m.logger.Debug("Menu exited")
	return nil
}

// resolve returns a nil Flow for Exit.
func (m *Menu) resolve(choice string) (Flow, error) {
	if choice == ChoiceExit {
		return nil, nil
	}
	flow, ok := m.flows[choice]
	if !ok || flow == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidChoice, choice)
	}
	return flow, nil
}
