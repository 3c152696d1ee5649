package editor

import (
	"context"
	"fmt"

	"github.com/iw2rmb/amanita/storage"
)

// SaveJob writes a snapshot of a buffer. It may run on any goroutine;
// the buffer refuses edits until FinishSave releases it.
type SaveJob struct {
	doc  *document
	path string
	text string
}

func (j *SaveJob) Path() string { return j.path }

// Run writes the snapshot to store.
func (j *SaveJob) Run(ctx context.Context, store storage.Store) error {
	if err := store.Save(ctx, j.path, j.text); err != nil {
		return fmt.Errorf("save %s: %w", j.path, err)
	}
	return nil
}

// BeginSave snapshots the current buffer for saving and marks it busy.
// The snapshot has every indentation step collapsed to one tab.
func (e *Editor) BeginSave() (*SaveJob, error) {
	d := e.doc()
	path := d.buf.Path()
	if path == "" {
		return nil, ErrNoFileAssociated
	}
	if d.saving {
		return nil, fmt.Errorf("save %s: %w", path, ErrSaveInProgress)
	}
	d.saving = true
	return &SaveJob{
		doc:  d,
		path: path,
		text: storage.CollapseTabs(d.buf.Text(), e.cfg.TabWidth),
	}, nil
}

// FinishSave releases the buffer of j.
func (e *Editor) FinishSave(j *SaveJob) {
	if j == nil {
		return
	}
	j.doc.saving = false
	e.log.WithField("path", j.path).Debug("save finished")
}

// Store returns the store Save writes to.
func (e *Editor) Store() storage.Store { return e.cfg.Store }

// Save writes the current buffer to its path.
func (e *Editor) Save(ctx context.Context) error {
	j, err := e.BeginSave()
	if err != nil {
		return err
	}
	defer e.FinishSave(j)
	return j.Run(ctx, e.cfg.Store)
}
