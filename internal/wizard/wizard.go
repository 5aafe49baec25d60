// Package wizard asks the questions that make up a new contribution and
// records new projects and people in the document on the way.
package wizard

import (
	"context"
	"fmt"
	"time"

	"github.com/ywarnier/oss-contrib/internal/ask"
	"github.com/ywarnier/oss-contrib/internal/document"
	contriberrors "github.com/ywarnier/oss-contrib/internal/errors"
	"github.com/ywarnier/oss-contrib/internal/logging"
)

// Sentinel choices prepended to the project and people lists.
const (
	NewProject = "New project"
	NewPerson  = "New person"
)

// DefaultType is the contribution type offered when none is configured.
const DefaultType = "code"

// Hint shown below multi-line questions.
const multilineHint = "Use EOL to finish, e.g. Ctrl+D on an empty line to finish input"

// Wizard collects one contribution from a session.
type Wizard struct {
	doc         *document.Document
	session     ask.Session
	logger      *logging.Logger
	now         func() time.Time
	defaultType string
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithLogger sets the logger used for step tracing. File and step
// attributes are taken from the context given to Run, so l should not
// carry them already.
func WithLogger(l *logging.Logger) Option {
	return func(w *Wizard) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithClock sets the time source for the default start date.
func WithClock(now func() time.Time) Option {
	return func(w *Wizard) {
		if now != nil {
			w.now = now
		}
	}
}

// WithDefaultType sets the type chosen on an empty answer.
func WithDefaultType(t string) Option {
	return func(w *Wizard) {
		if t != "" {
			w.defaultType = t
		}
	}
}

// New creates a wizard that reads choices from doc and asks through session.
func New(doc *document.Document, session ask.Session, opts ...Option) *Wizard {
	w := &Wizard{
		doc:         doc,
		session:     session,
		logger:      logging.NewNoop(),
		now:         time.Now,
		defaultType: DefaultType,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type step struct {
	name string
	run  func(ctx context.Context, c *document.Contribution) error
}

func (w *Wizard) steps() []step {
	return []step{
		{"project", w.askProject},
		{"title", w.askTitle},
		{"type", w.askType},
		{"who", w.askPerson},
		{"start", w.askStart},
		{"description", w.askDescription},
		{"links", w.askLinks},
	}
}

// Run asks every question in order and returns the completed contribution.
// New projects and people are inserted into the document as they are
// entered. The document is left unsorted; call Finalize on it afterwards.
func (w *Wizard) Run(ctx context.Context) (document.Contribution, error) {
	var c document.Contribution
	steps := w.steps()
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return document.Contribution{}, contriberrors.Aborted(err.Error())
		}
		stepCtx := logging.WithStep(ctx, s.name)
		w.logger.WithContext(stepCtx).Debug("asking", "position", i+1, "total", len(steps))
		if err := s.run(stepCtx, &c); err != nil {
			w.logger.WithContext(stepCtx).Debug("step failed", "error", err)
			return document.Contribution{}, err
		}
	}
	// An interrupt during the last answer must not reach the writer.
	if err := ctx.Err(); err != nil {
		return document.Contribution{}, contriberrors.Aborted(err.Error())
	}
	w.logger.WithContext(ctx).Info("contribution collected", "project", c.Project, "who", c.Who, "start", document.FormatTimestamp(c.Start))
	return c, nil
}

// prompt numbers a top-level question.
func prompt(n int, text string) string {
	return fmt.Sprintf("[%d/7] %s", n, text)
}

// ask repeats q until validate accepts the answer. Validation failures are
// reported through the session; any other error ends the loop.
func (w *Wizard) ask(ctx context.Context, q ask.Question, validate func(string) error) error {
	for {
		answer, err := w.session.Ask(ctx, q)
		if err != nil {
			return err
		}
		err = validate(answer)
		if err == nil {
			return nil
		}
		if !contriberrors.IsValidation(err) {
			return err
		}
		w.logger.WithContext(ctx).Debug("answer rejected", "error", err)
		w.session.Reject(err.Error())
	}
}

// askText asks a single-line question that must not be blank.
func (w *Wizard) askText(ctx context.Context, text string) (string, error) {
	var value string
	err := w.ask(ctx, ask.Question{Prompt: text}, func(answer string) error {
		v, err := NonEmpty(answer)
		value = v
		return err
	})
	return value, err
}

// choose asks a choice question and returns the resolved index.
func (w *Wizard) choose(ctx context.Context, text string, choices []string, def, invalidFormat string) (int, error) {
	index := -1
	q := ask.Question{Prompt: text, Choices: choices, Default: def}
	err := w.ask(ctx, q, func(answer string) error {
		i, err := Choose(choices, answer, invalidFormat)
		index = i
		return err
	})
	return index, err
}

func (w *Wizard) askProject(ctx context.Context, c *document.Contribution) error {
	ids := w.doc.ProjectIDs()
	choices := append([]string{NewProject}, ids...)

	index, err := w.choose(ctx, prompt(1, "Which project received the contribution?"), choices, NewProject, "Project %s is invalid.")
	if err != nil {
		return err
	}

	sel := selectFrom(ids, index)
	if sel.Create {
		if sel, err = w.createProject(ctx); err != nil {
			return err
		}
	}
	c.Project = sel.ID
	return nil
}

// createProject collects a new project and inserts it into the document.
func (w *Wizard) createProject(ctx context.Context) (Selection, error) {
	id, err := w.askText(ctx, "What is the machine name of the project? (E.g. drupal/migrate_plus): ")
	if err != nil {
		return Selection{}, err
	}
	name, err := w.askText(ctx, "What is the name of the project? (E.g. Migrate Plus): ")
	if err != nil {
		return Selection{}, err
	}
	url, err := w.askText(ctx, "What is the main URL of the project? (E.g. https://www.drupal.org/project/migrate_plus): ")
	if err != nil {
		return Selection{}, err
	}

	w.doc.SetProject(id, document.Project{Name: name, URL: url})
	w.logger.WithContext(ctx).Info("project added", "id", id)
	return Existing(id), nil
}

func (w *Wizard) askTitle(ctx context.Context, c *document.Contribution) error {
	title, err := w.askText(ctx, prompt(2, "Please give the contribution a title: "))
	if err != nil {
		return err
	}
	c.Title = title
	return nil
}

func (w *Wizard) askType(ctx context.Context, c *document.Contribution) error {
	types := w.doc.Types()
	text := prompt(3, fmt.Sprintf("What was the main type of the contribution? [default: %s]", w.defaultType))

	index, err := w.choose(ctx, text, types, w.defaultType, "Type %s is invalid.")
	if err != nil {
		return err
	}
	c.Type = types[index]
	return nil
}

func (w *Wizard) askPerson(ctx context.Context, c *document.Contribution) error {
	ids := w.doc.PersonIDs()
	choices := append([]string{NewPerson}, ids...)

	index, err := w.choose(ctx, prompt(4, "Who is making the contribution?"), choices, NewPerson, "Person %s is invalid.")
	if err != nil {
		return err
	}

	sel := selectFrom(ids, index)
	if sel.Create {
		if sel, err = w.createPerson(ctx); err != nil {
			return err
		}
	}
	c.Who = sel.ID
	return nil
}

// createPerson collects a new person and inserts it into the document.
func (w *Wizard) createPerson(ctx context.Context) (Selection, error) {
	name, err := w.askText(ctx, "What is the name of the person? (E.g. José Saramago): ")
	if err != nil {
		return Selection{}, err
	}
	id, err := w.askText(ctx, "What is the identifier for the person? (E.g. Jose): ")
	if err != nil {
		return Selection{}, err
	}

	w.doc.SetPerson(id, name)
	w.logger.WithContext(ctx).Info("person added", "id", id)
	return Existing(id), nil
}

func (w *Wizard) askStart(ctx context.Context, c *document.Contribution) error {
	now := w.now()
	today := now.Format(DateLayout)
	q := ask.Question{
		Prompt:  prompt(5, fmt.Sprintf("When was the contribution first published? (E.g. 2020-01-22) [default: %s]: ", today)),
		Default: today,
	}
	return w.ask(ctx, q, func(answer string) error {
		start, err := ParseDate(answer, now)
		c.Start = start
		return err
	})
}

func (w *Wizard) askDescription(ctx context.Context, c *document.Contribution) error {
	q := ask.Question{
		Prompt:    prompt(6, "How would you describe the contribution? (multiline)"),
		Hint:      multilineHint,
		Multiline: true,
	}
	return w.ask(ctx, q, func(answer string) error {
		description, err := Description(answer)
		c.Description = description
		return err
	})
}

func (w *Wizard) askLinks(ctx context.Context, c *document.Contribution) error {
	q := ask.Question{
		Prompt:    prompt(7, "Please provide public links related to the contribution? (one per line)"),
		Hint:      multilineHint,
		Multiline: true,
	}
	return w.ask(ctx, q, func(answer string) error {
		links, err := Links(answer)
		c.Links = links
		return err
	})
}
