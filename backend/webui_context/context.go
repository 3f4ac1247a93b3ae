// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package webui_context

import (
	"sync"

	"github.com/google/uuid"
	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/omec-project/slice-webconsole/backend/sliceform"
)

// WEBUIContext tracks the form mounted for each browser session.
type WEBUIContext struct {
	mu        sync.RWMutex
	forms     map[string]*sliceform.Controller
	submitter sliceform.Submitter
}

var webuiContext *WEBUIContext

func NewWEBUIContext(submitter sliceform.Submitter) *WEBUIContext {
	return &WEBUIContext{
		forms:     make(map[string]*sliceform.Controller),
		submitter: submitter,
	}
}

// InitWEBUIContext installs the process wide context returned by WEBUI_Self.
func InitWEBUIContext(submitter sliceform.Submitter) *WEBUIContext {
	webuiContext = NewWEBUIContext(submitter)
	return webuiContext
}

func WEBUI_Self() *WEBUIContext {
	return webuiContext
}

// Mount creates a fresh draft for sessionID, discarding any earlier one. An
// empty sessionID gets a new random id.
func (ctx *WEBUIContext) Mount(sessionID string) (string, *sliceform.Controller) {
	if _, err := uuid.Parse(sessionID); err != nil {
		sessionID = uuid.NewString()
	}
	form := sliceform.NewController(ctx.submitter)

	ctx.mu.Lock()
	_, remount := ctx.forms[sessionID]
	ctx.forms[sessionID] = form
	ctx.mu.Unlock()

	if remount {
		logger.ContextLog.Debugf("form remounted for session %s", sessionID)
	} else {
		logger.ContextLog.Debugf("form mounted for session %s", sessionID)
	}
	return sessionID, form
}

func (ctx *WEBUIContext) Lookup(sessionID string) (*sliceform.Controller, bool) {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	form, ok := ctx.forms[sessionID]
	return form, ok
}

// Unmount drops the draft of sessionID. In-flight submissions are unaffected.
func (ctx *WEBUIContext) Unmount(sessionID string) bool {
	ctx.mu.Lock()
	_, ok := ctx.forms[sessionID]
	delete(ctx.forms, sessionID)
	ctx.mu.Unlock()
	if ok {
		logger.ContextLog.Debugf("form unmounted for session %s", sessionID)
	}
	return ok
}

func (ctx *WEBUIContext) Len() int {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()
	return len(ctx.forms)
}
