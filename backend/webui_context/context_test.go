// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package webui_context

import (
	"testing"

	"github.com/google/uuid"
	"github.com/omec-project/slice-webconsole/backend/sliceform"
)

func TestMount_AssignsSessionID(t *testing.T) {
	ctx := NewWEBUIContext(nil)
	for _, given := range []string{"", "not-a-uuid"} {
		id, form := ctx.Mount(given)
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("expected generated uuid for %q, got %q", given, id)
		}
		if got, ok := ctx.Lookup(id); !ok || got != form {
			t.Errorf("mounted form not found for %q", id)
		}
	}
	if ctx.Len() != 2 {
		t.Errorf("expected 2 mounted forms, got %d", ctx.Len())
	}
}

func TestMount_RemountDiscardsDraft(t *testing.T) {
	ctx := NewWEBUIContext(nil)
	id, first := ctx.Mount("")
	if err := first.Update(sliceform.FieldSST, "eMBB"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sameID, second := ctx.Mount(id)
	if sameID != id {
		t.Fatalf("expected session id %q to be kept, got %q", id, sameID)
	}
	if second == first {
		t.Fatal("expected a new controller on remount")
	}
	if got := second.Draft().SliceProfile.SST; got != "" {
		t.Errorf("expected fresh draft, got sST %q", got)
	}
	if ctx.Len() != 1 {
		t.Errorf("expected 1 mounted form, got %d", ctx.Len())
	}
}

func TestUnmount(t *testing.T) {
	ctx := NewWEBUIContext(nil)
	id, _ := ctx.Mount("")
	if !ctx.Unmount(id) {
		t.Error("expected unmount to report a mounted form")
	}
	if _, ok := ctx.Lookup(id); ok {
		t.Error("form still mounted after unmount")
	}
	if ctx.Unmount(id) {
		t.Error("expected second unmount to report nothing")
	}
}

func TestInitWEBUIContext(t *testing.T) {
	ctx := InitWEBUIContext(nil)
	if WEBUI_Self() != ctx {
		t.Error("WEBUI_Self did not return the installed context")
	}
}
