package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
)

// DateLayout is the day/month/year form accepted by the date prompt.
const DateLayout = "2/1/2006"

// Prompter asks the operator for input. A validator error is shown to the
// operator and the question is asked again.
type Prompter interface {
	Select(message string, options []string, help string) (string, error)
	Input(message, defaultValue string, validate func(string) error) (string, error)
	Date(message string, defaultValue time.Time) (time.Time, error)
}

// SurveyPrompter renders prompts on the terminal.
type SurveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter uses the process stdio unless opts say otherwise
// (survey.WithStdio).
func NewSurveyPrompter(opts ...survey.AskOpt) *SurveyPrompter {
	return &SurveyPrompter{opts: opts}
}

func (p *SurveyPrompter) Select(message string, options []string, help string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message: message,
		Options: options,
		Help:    help,
	}
	if err := survey.AskOne(prompt, &answer, p.opts...); err != nil {
		return "", err
	}
	return answer, nil
}

func (p *SurveyPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Default: defaultValue,
	}

	opts := p.opts
	if validate != nil {
		opts = append(opts[:len(opts):len(opts)], survey.WithValidator(func(ans interface{}) error {
			s, ok := ans.(string)
			if !ok {
				return fmt.Errorf("unexpected answer type %T", ans)
			}
			return validate(strings.TrimSpace(s))
		}))
	}

	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (p *SurveyPrompter) Date(message string, defaultValue time.Time) (time.Time, error) {
	raw, err := p.Input(message, defaultValue.Format(DateLayout), validateDateAnswer)
	if err != nil {
		return time.Time{}, err
	}
	return parseDate(raw)
}

func parseDate(raw string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, raw, time.Local)
}
