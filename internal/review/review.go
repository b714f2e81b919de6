// Package review walks the hidden entries of descriptor documents and lets an
// operator reveal them one at a time.
package review

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/go-multierror"

	"github.com/mydehq/gamedesc/internal/descriptor"
	"github.com/mydehq/gamedesc/internal/entry"
	"github.com/mydehq/gamedesc/internal/types"
)

// Decision is the operator's answer for one entry.
type Decision int

const (
	Accept Decision = iota
	Reject
	Cancel
)

func (d Decision) String() string {
	switch d {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	default:
		return "cancel"
	}
}

// Prompt describes the entry the operator is asked about.
type Prompt struct {
	Platform string
	Name     string
	Path     string
	Volumes  int // members in the entry's group
	Position int // 1-based among the platform's eligible entries
	Total    int
}

// Prompter asks the operator whether to unhide one entry. It blocks until
// the operator answers.
type Prompter interface {
	Ask(ctx context.Context, p Prompt) (Decision, error)
}

// Outcome is what happened to one eligible entry.
type Outcome int

const (
	Unhidden Outcome = iota
	Skipped
	Cancelled
)

func (o Outcome) String() string {
	switch o {
	case Unhidden:
		return "Unhidden"
	case Skipped:
		return "Skipped"
	default:
		return "Cancelled"
	}
}

// Result aggregates one platform run.
type Result struct {
	Platform      types.Platform
	Found         int
	Bypassed      int
	Unhidden      int
	Skipped       int
	BypassReasons map[string]int
	Outcomes      map[int]Outcome // keyed by record index

	Malformed  bool
	DryRun     bool
	Cancelled  bool
	Saved      bool
	BackupPath string
	Err        error
	Warning    error // recoverable, never aggregated into the run error
}

// State names the stage a platform run ended in.
func (r Result) State() string {
	switch {
	case r.Malformed:
		return "malformed"
	case r.Err != nil:
		return "failed"
	case r.Cancelled:
		return "cancelled"
	case r.DryRun:
		return "dry-run"
	case r.Saved:
		return "saved"
	default:
		return "unchanged"
	}
}

// Workflow reviews descriptor documents one platform at a time.
type Workflow struct {
	Prompter Prompter
	Logger   *log.Logger
	Now      func() time.Time
	DryRun   bool // plan and count only
}

func (w *Workflow) logger() *log.Logger {
	if w.Logger == nil {
		w.Logger = log.New(io.Discard)
	}
	return w.Logger
}

func (w *Workflow) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

// Review prompts for every eligible entry of doc and persists accepted edits.
// A malformed document is counted but never edited.
func (w *Workflow) Review(ctx context.Context, platform types.Platform, doc *descriptor.Document) Result {
	logger := w.logger().With("platform", platform.Label)

	groups := entry.Build(entry.NormalizeAll(doc.Records()))
	plan := PlanGroups(groups)

	res := Result{
		Platform:      platform,
		Found:         plan.Found,
		Bypassed:      len(plan.Bypassed),
		BypassReasons: plan.BypassReasons,
		Outcomes:      map[int]Outcome{},
		DryRun:        w.DryRun,
	}
	for _, b := range plan.Bypassed {
		logger.Debug("Bypassed", "name", b.Name, "path", b.PathRaw, "reason", BypassDisk2)
	}

	if doc.Malformed() {
		res.Malformed = true
		res.Warning = types.ErrMalformedDescriptor{Path: doc.Path}
		logger.Warn("Descriptor is malformed, skipping edits", "path", doc.Path, "salvaged", len(doc.Records()))
		return res
	}
	if len(plan.Eligible) == 0 || w.DryRun {
		return res
	}

	p := &persister{doc: doc, now: w.now}
	total := len(plan.Eligible)
	for i, e := range plan.Eligible {
		decision := Cancel
		if ctx.Err() == nil {
			var err error
			decision, err = w.Prompter.Ask(ctx, Prompt{
				Platform: platform.Label,
				Name:     e.Name,
				Path:     e.PathRaw,
				Volumes:  plan.Volumes[e.Index],
				Position: i + 1,
				Total:    total,
			})
			if err != nil {
				logger.Error("Prompt failed", "error", err)
				res.Err = err
				decision = Cancel
			}
		}

		if decision == Cancel {
			res.Cancelled = true
			for _, rest := range plan.Eligible[i:] {
				res.Outcomes[rest.Index] = Cancelled
			}
			break
		}

		if decision == Reject {
			res.Outcomes[e.Index] = Skipped
			res.Skipped++
			continue
		}

		if err := doc.Unhide(e.Index); err != nil {
			logger.Error("Failed to unhide", "name", e.Name, "error", err)
			res.Outcomes[e.Index] = Skipped
			res.Skipped++
			continue
		}
		res.Outcomes[e.Index] = Unhidden
		res.Unhidden++
		logger.Info("Unhidden: " + e.Name)
	}

	// Accepted edits are kept on cancel.
	if doc.Dirty() {
		if err := p.persist(); err != nil {
			logger.Error("Failed to save descriptor, treating as unmodified", "path", doc.Path, "error", err)
			res.Err = multierror.Append(res.Err, err).ErrorOrNil()
			res.Unhidden = 0
			return res
		}
		res.Saved = true
		res.BackupPath = p.backupPath
		logger.Info("Saved: "+doc.Path, "backup", p.backupPath)
	}
	return res
}

// persister writes a document at most once per backup: the first persist of a
// platform run copies the original file aside and later persists reuse it.
type persister struct {
	doc        *descriptor.Document
	now        func() time.Time
	backupPath string
}

func (p *persister) persist() error {
	if p.backupPath == "" {
		bak, err := descriptor.Backup(p.doc.Path, p.now())
		if err != nil {
			return err
		}
		p.backupPath = bak
	}
	return p.doc.Write()
}
