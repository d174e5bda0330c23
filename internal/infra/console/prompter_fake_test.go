package console

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var errScriptExhausted = errors.New("no scripted answer left")

// scriptedPrompter replays answers in order. A rejected Input answer is
// recorded and the next answer is taken, like the terminal re-asking.
type scriptedPrompter struct {
	answers  []string
	dates    []time.Time
	asked    []string
	rejected []string
}

func (p *scriptedPrompter) next() (string, error) {
	if len(p.answers) == 0 {
		return "", errScriptExhausted
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *scriptedPrompter) Select(message string, options []string, help string) (string, error) {
	p.asked = append(p.asked, message)
	return p.next()
}

func (p *scriptedPrompter) Input(message, defaultValue string, validate func(string) error) (string, error) {
	p.asked = append(p.asked, message)
	for {
		a, err := p.next()
		if err != nil {
			return "", err
		}
		if a == "" {
			a = defaultValue
		}
		if validate != nil {
			if verr := validate(a); verr != nil {
				p.rejected = append(p.rejected, verr.Error())
				continue
			}
		}
		return a, nil
	}
}

func (p *scriptedPrompter) Date(message string, defaultValue time.Time) (time.Time, error) {
	p.asked = append(p.asked, message)
	if len(p.dates) == 0 {
		return defaultValue, nil
	}
	d := p.dates[0]
	p.dates = p.dates[1:]
	return d, nil
}

func testLogger() *logrus.Entry {
	logger, _ := test.NewNullLogger()
	return logrus.NewEntry(logger)
}
