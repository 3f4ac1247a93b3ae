// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package sliceform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/omec-project/slice-webconsole/backend/sliceapi"
	"github.com/omec-project/slice-webconsole/configmodels"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingSubmitter struct {
	mu       sync.Mutex
	bodies   [][]byte
	response json.RawMessage
	err      error
	release  chan struct{}
}

func (s *recordingSubmitter) CreateSlice(ctx context.Context, body []byte) (json.RawMessage, error) {
	if s.release != nil {
		<-s.release
	}
	s.mu.Lock()
	s.bodies = append(s.bodies, body)
	s.mu.Unlock()
	return s.response, s.err
}

func (s *recordingSubmitter) recorded() [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]byte(nil), s.bodies...)
}

type panickingSubmitter struct{}

func (panickingSubmitter) CreateSlice(context.Context, []byte) (json.RawMessage, error) {
	panic("boom")
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	restore := logger.ReplaceLogger(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func waitResult(t *testing.T, done <-chan SubmitResult) SubmitResult {
	t.Helper()
	select {
	case result := <-done:
		return result
	case <-time.After(5 * time.Second):
		t.Fatal("submission did not complete")
	}
	return SubmitResult{}
}

func TestUpdate_SetsOnlyTargetedLeaf(t *testing.T) {
	for _, id := range AllFields() {
		t.Run(id.Name(), func(t *testing.T) {
			c := NewController(nil)
			if err := c.Update(FieldDescription, "seed"); err != nil {
				t.Fatalf("seed update: %v", err)
			}
			before := c.Draft()
			value := "v-" + id.Name()

			if err := c.Update(id, value); err != nil {
				t.Fatalf("update %s: %v", id, err)
			}

			after := c.Draft()
			if got := fieldSpecs[id].get(&after.SliceProfile); got != value {
				t.Errorf("expected %q, got %q", value, got)
			}
			want := before.Clone()
			fieldSpecs[id].set(&want.SliceProfile, value)
			if diff := cmp.Diff(want, after); diff != "" {
				t.Errorf("unexpected changes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateByName(t *testing.T) {
	c := NewController(nil)
	if err := c.UpdateByName("SliceProfile.snssai.sst", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.UpdateByName("SliceProfile.snssai.sd", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.UpdateByName("SliceProfile.plmnIdList.0.mnc", "260"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.UpdateByName("SliceProfile.plmnIdList.0.mcc", "310"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	draft := c.Draft().SliceProfile
	if draft.Snssai.Sd != "1" || draft.Snssai.Sst != "1" {
		t.Errorf("unexpected snssai %+v", draft.Snssai)
	}
	if draft.PlmnIdList[0].Mcc != "310" || draft.PlmnIdList[0].Mnc != "260" {
		t.Errorf("unexpected plmn %+v", draft.PlmnIdList[0])
	}
}

func TestUpdateByName_SnssaiSdLeavesSst(t *testing.T) {
	c := NewController(nil)
	if err := c.UpdateByName("SliceProfile.snssai.sd", "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	draft := c.Draft().SliceProfile
	if draft.Snssai.Sd != "1" {
		t.Errorf("expected sd 1, got %q", draft.Snssai.Sd)
	}
	if draft.Snssai.Sst != "" {
		t.Errorf("expected sst unchanged, got %q", draft.Snssai.Sst)
	}
}

func TestUpdateByName_UnknownFieldLeavesDraft(t *testing.T) {
	names := []string{
		"",
		"SliceProfile",
		"SliceProfile.plmnIdList.1.mcc",
		"SliceProfile.coverageAreaTAList.1",
		"SliceProfile.latency.latencyUnit",
		"SliceProfile.resources.cpu.unit",
		"SliceProfile.snssai",
		"snssai.sd",
	}
	for _, name := range names {
		t.Run(fmt.Sprintf("%q", name), func(t *testing.T) {
			c := NewController(nil)
			err := c.UpdateByName(name, "x")
			if !errors.Is(err, ErrUnknownField) {
				t.Fatalf("expected ErrUnknownField, got %v", err)
			}
			if diff := cmp.Diff(configmodels.NewSliceProfileDraft(), c.Draft()); diff != "" {
				t.Errorf("draft changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdate_InvalidFieldID(t *testing.T) {
	c := NewController(nil)
	for _, id := range []FieldID{-1, numFields, numFields + 3} {
		if err := c.Update(id, "x"); !errors.Is(err, ErrUnknownField) {
			t.Errorf("expected ErrUnknownField for %v, got %v", id, err)
		}
	}
}

func TestUpdate_StoresRawValue(t *testing.T) {
	c := NewController(nil)
	for _, value := range []string{"007", "1e3", "", " 12 ", "not-a-number"} {
		if err := c.Update(FieldMaxNumberofUEs, value); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := c.Draft().SliceProfile.MaxNumberofUEs; got != value {
			t.Errorf("expected %q stored verbatim, got %q", value, got)
		}
	}
}

func TestFields_RenderOrderAndValues(t *testing.T) {
	c := NewController(nil)
	if err := c.Update(FieldCpu, "4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fields := c.Fields()
	if len(fields) != int(numFields) {
		t.Fatalf("expected %d fields, got %d", numFields, len(fields))
	}
	if fields[0].Name != "SliceProfile.sST" || fields[0].Label != "SST" {
		t.Errorf("unexpected first field %+v", fields[0])
	}
	cpu := fields[FieldCpu]
	if cpu.Value != "4" || cpu.Section != SectionResources || cpu.InputType != InputNumber {
		t.Errorf("unexpected cpu field %+v", cpu)
	}
	for _, f := range fields {
		id, err := LookupField(f.Name)
		if err != nil || id != f.ID {
			t.Errorf("field %s does not resolve to itself: %v %v", f.Name, id, err)
		}
	}
}

func TestSubmit_DefaultDraftBody(t *testing.T) {
	observeLogs(t)
	submitter := &recordingSubmitter{response: json.RawMessage(`{}`)}
	c := NewController(submitter)

	result := waitResult(t, c.Submit(context.Background()))
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}

	bodies := submitter.recorded()
	if len(bodies) != 1 {
		t.Fatalf("expected one request, got %d", len(bodies))
	}
	var got configmodels.SliceProfileDraft
	if err := json.Unmarshal(bodies[0], &got); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if diff := cmp.Diff(configmodels.NewSliceProfileDraft(), got); diff != "" {
		t.Errorf("body differs from default draft (-want +got):\n%s", diff)
	}
}

func TestSubmit_SequentialBodiesAreIndependent(t *testing.T) {
	observeLogs(t)
	submitter := &recordingSubmitter{response: json.RawMessage(`{}`)}
	c := NewController(submitter)

	if err := c.Update(FieldSliceProfileName, "first"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitResult(t, c.Submit(context.Background()))
	if err := c.Update(FieldSliceProfileName, "second"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Update(FieldPlmnMcc, "310"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	waitResult(t, c.Submit(context.Background()))

	bodies := submitter.recorded()
	if len(bodies) != 2 {
		t.Fatalf("expected two requests, got %d", len(bodies))
	}
	var first, second configmodels.SliceProfileDraft
	if err := json.Unmarshal(bodies[0], &first); err != nil {
		t.Fatalf("unmarshal first: %v", err)
	}
	if err := json.Unmarshal(bodies[1], &second); err != nil {
		t.Fatalf("unmarshal second: %v", err)
	}
	if first.SliceProfile.SliceProfileName != "first" || first.SliceProfile.PlmnIdList[0].Mcc != "" {
		t.Errorf("first body reflects later edits: %+v", first.SliceProfile)
	}
	if second.SliceProfile.SliceProfileName != "second" || second.SliceProfile.PlmnIdList[0].Mcc != "310" {
		t.Errorf("second body missing edits: %+v", second.SliceProfile)
	}
}

func TestSubmit_SnapshotTakenAtCallTime(t *testing.T) {
	observeLogs(t)
	submitter := &recordingSubmitter{response: json.RawMessage(`{}`), release: make(chan struct{})}
	c := NewController(submitter)

	if err := c.Update(FieldSST, "eMBB"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := c.Submit(context.Background())
	// edits and a second submit proceed while the first is still in flight
	if err := c.Update(FieldSST, "URLLC"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second := c.Submit(context.Background())
	close(submitter.release)
	waitResult(t, first)
	waitResult(t, second)

	seen := map[string]bool{}
	for _, body := range submitter.recorded() {
		var draft configmodels.SliceProfileDraft
		if err := json.Unmarshal(body, &draft); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		seen[draft.SliceProfile.SST] = true
	}
	if !seen["eMBB"] || !seen["URLLC"] {
		t.Errorf("expected both snapshots to be sent, got %v", seen)
	}
}

func TestSubmit_LogsOutcome(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		response    string
		expectError bool
		message     string
	}{
		{
			name:     "success",
			status:   http.StatusOK,
			response: `{"sliceId":"slice-1"}`,
			message:  `Slice created successfully: {"sliceId":"slice-1"}`,
		},
		{
			name:        "server error",
			status:      http.StatusInternalServerError,
			response:    `{"error":"boom"}`,
			expectError: true,
			message:     "Error creating slice",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logs := observeLogs(t)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.response))
			}))
			defer server.Close()

			c := NewController(sliceapi.NewClient(server.URL, server.Client()))
			result := waitResult(t, c.Submit(context.Background()))

			if tc.expectError != (result.Err != nil) {
				t.Fatalf("expectError=%v, got %v", tc.expectError, result.Err)
			}
			entries := logs.FilterMessageSnippet(tc.message).All()
			if len(entries) != 1 {
				t.Fatalf("expected one %q log entry, got %d", tc.message, len(entries))
			}
			expectedLevel := zap.InfoLevel
			if tc.expectError {
				expectedLevel = zap.ErrorLevel
			}
			if entries[0].Level != expectedLevel {
				t.Errorf("expected level %v, got %v", expectedLevel, entries[0].Level)
			}
			if diff := cmp.Diff(configmodels.NewSliceProfileDraft(), c.Draft()); diff != "" {
				t.Errorf("submit changed the draft (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSubmit_FailuresAreAbsorbed(t *testing.T) {
	tests := []struct {
		name      string
		submitter Submitter
	}{
		{name: "transport error", submitter: &recordingSubmitter{err: errors.New("connection refused")}},
		{name: "panic", submitter: panickingSubmitter{}},
		{name: "no client", submitter: nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logs := observeLogs(t)
			c := NewController(tc.submitter)
			result := waitResult(t, c.Submit(context.Background()))
			if result.Err == nil {
				t.Fatal("expected failure result")
			}
			if logs.FilterMessageSnippet("Error creating slice").Len() != 1 {
				t.Error("expected failure to be logged")
			}
		})
	}
}
