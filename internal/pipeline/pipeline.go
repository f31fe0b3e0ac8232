// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package pipeline runs the ordered content generation steps for a new blog:
// About → Contact → Hero → Design → Meta. Each step sees the text produced
// by the steps before it; the first failing step aborts the run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"autobloggerx/internal/models"
	"autobloggerx/internal/parse"
	"autobloggerx/internal/prompt"
)

// Step identifies one generation step.
type Step int

const (
	StepAbout Step = iota
	StepContact
	StepHero
	StepDesign
	StepMeta
)

// Steps lists every step in execution order.
var Steps = []Step{StepAbout, StepContact, StepHero, StepDesign, StepMeta}

func (s Step) String() string {
	switch s {
	case StepAbout:
		return "about"
	case StepContact:
		return "contact"
	case StepHero:
		return "hero"
	case StepDesign:
		return "design"
	case StepMeta:
		return "meta"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// StepError reports which step failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("generate %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// Observer is notified after each completed step.
type Observer func(step Step, elapsed time.Duration)

// Pipeline generates the content of one website.
type Pipeline struct {
	client   *Client
	observer Observer
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithObserver registers a callback for step completion.
func WithObserver(o Observer) Option {
	return func(p *Pipeline) { p.observer = o }
}

// New creates a Pipeline that sends its prompts through client.
func New(client *Client, opts ...Option) *Pipeline {
	p := &Pipeline{client: client}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes all steps in order. Nothing is returned on failure; the
// caller must not persist anything from a failed run.
func (p *Pipeline) Run(ctx context.Context, req models.SiteRequest) (*models.GeneratedContent, error) {
	var (
		out     models.GeneratedContent
		history models.GenerationContext
	)
	name, topic := req.WebsiteName, req.Topic

	// The design reply is not added to the history, so the meta step sees
	// the same context as the design step.
	err := p.runSteps(ctx, []stepFunc{
		StepAbout: func() error {
			reply, err := p.client.Complete(ctx, prompt.About(name, topic), history)
			if err != nil {
				return err
			}
			out.AboutUs = reply
			history = history.With("Om oss", reply)
			return nil
		},
		StepContact: func() error {
			reply, err := p.client.Complete(ctx, prompt.Contact(name, topic), history)
			if err != nil {
				return err
			}
			out.ContactUs = reply
			history = history.With("Kontakt", reply)
			return nil
		},
		StepHero: func() error {
			reply, err := p.client.Complete(ctx, prompt.Hero(name), history)
			if err != nil {
				return err
			}
			out.Hero = parse.Hero(reply)
			history = history.With("Hero", out.Hero.Title+" - "+out.Hero.Text)
			return nil
		},
		StepDesign: func() error {
			reply, err := p.client.Complete(ctx, prompt.Design(name, topic), history)
			if err != nil {
				return err
			}
			out.Design = parse.Design(reply)
			return nil
		},
		StepMeta: func() (err error) {
			out.MetaDescription, err = p.client.Complete(ctx, prompt.MetaDescription(name, topic), history)
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

type stepFunc func() error

// runSteps executes fns in order, stopping at the first error.
func (p *Pipeline) runSteps(ctx context.Context, fns []stepFunc) error {
	for i, fn := range fns {
		step := Step(i)
		if err := ctx.Err(); err != nil {
			return &StepError{Step: step, Err: err}
		}
		start := time.Now()
		if err := fn(); err != nil {
			return &StepError{Step: step, Err: err}
		}
		if p.observer != nil {
			p.observer(step, time.Since(start))
		}
	}
	return nil
}
