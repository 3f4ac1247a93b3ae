// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package sliceform

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/omec-project/slice-webconsole/backend/metrics"
	"github.com/omec-project/slice-webconsole/configmodels"
)

// Submitter delivers a serialized slice profile to the slice API and returns
// the response payload.
type Submitter interface {
	CreateSlice(ctx context.Context, body []byte) (json.RawMessage, error)
}

// SubmitResult is the outcome of one submission.
type SubmitResult struct {
	Response json.RawMessage
	Err      error
}

// Controller owns the draft of one mounted form.
type Controller struct {
	mu        sync.Mutex
	draft     configmodels.SliceProfileDraft
	submitter Submitter
}

func NewController(submitter Submitter) *Controller {
	return &Controller{
		draft:     configmodels.NewSliceProfileDraft(),
		submitter: submitter,
	}
}

// Update sets one leaf to value exactly as given. The previous draft is
// replaced by a copy that differs only in that leaf.
func (c *Controller) Update(id FieldID, value string) error {
	if !id.valid() {
		return fmt.Errorf("%w: %v", ErrUnknownField, id)
	}
	c.mu.Lock()
	next := c.draft.Clone()
	fieldSpecs[id].set(&next.SliceProfile, value)
	c.draft = next
	c.mu.Unlock()

	metrics.RecordFieldUpdate()
	logger.FormLog.Debugf("field %s updated to %q", id, value)
	return nil
}

// UpdateByName resolves an input name and applies the update. Unknown names
// leave the draft untouched.
func (c *Controller) UpdateByName(name, value string) error {
	id, err := LookupField(name)
	if err != nil {
		logger.FormLog.Warnln(err)
		return err
	}
	return c.Update(id, value)
}

// Draft returns a copy of the current draft.
func (c *Controller) Draft() configmodels.SliceProfileDraft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

// Fields returns every field with its current value, in render order.
func (c *Controller) Fields() []Field {
	draft := c.Draft()
	fields := make([]Field, 0, numFields)
	for _, id := range AllFields() {
		spec := fieldSpecs[id]
		fields = append(fields, Field{
			ID:        id,
			Name:      spec.name,
			Label:     spec.label,
			InputType: spec.inputType,
			Section:   spec.section,
			Value:     spec.get(&draft.SliceProfile),
		})
	}
	return fields
}

// Submit serializes the draft as it is now and posts it in the background.
// The outcome is logged and sent once on the returned channel; callers are
// free to ignore it. Nothing guards against overlapping submissions.
func (c *Controller) Submit(ctx context.Context) <-chan SubmitResult {
	done := make(chan SubmitResult, 1)

	body, err := json.Marshal(c.Draft())
	if err != nil {
		err = fmt.Errorf("marshal slice profile: %w", err)
		logger.SubmitLog.Errorf("Error creating slice: %v", err)
		metrics.RecordSubmission(false)
		done <- SubmitResult{Err: err}
		close(done)
		return done
	}

	go func() {
		defer close(done)
		result := c.post(ctx, body)
		if result.Err != nil {
			logger.SubmitLog.Errorf("Error creating slice: %v", result.Err)
			metrics.RecordSubmission(false)
		} else {
			logger.SubmitLog.Infof("Slice created successfully: %s", result.Response)
			metrics.RecordSubmission(true)
		}
		done <- result
	}()
	return done
}

func (c *Controller) post(ctx context.Context, body []byte) (result SubmitResult) {
	defer func() {
		if r := recover(); r != nil {
			result = SubmitResult{Err: fmt.Errorf("slice submission panicked: %v", r)}
		}
	}()
	if c.submitter == nil {
		return SubmitResult{Err: fmt.Errorf("no slice api client configured")}
	}
	resp, err := c.submitter.CreateSlice(ctx, body)
	return SubmitResult{Response: resp, Err: err}
}
