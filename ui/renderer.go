// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package ui

import (
	"fmt"
	"io/fs"

	"github.com/flosch/pongo2/v6"
	"github.com/omec-project/slice-webconsole/backend/sliceform"
)

const (
	PageTitle    = "5G Network Slicing"
	shellPage    = "index.html"
	SubmitAction = "/form/submit"
)

// Section groups the fields rendered under one heading.
type Section struct {
	Title  string
	Fields []sliceform.Field
}

// Renderer renders the page shell around the slice form.
type Renderer struct {
	shell *pongo2.Template
}

func NewRenderer() (*Renderer, error) {
	return NewRendererFS(TemplatesFS())
}

func NewRendererFS(templates fs.FS) (*Renderer, error) {
	set := pongo2.NewSet("ui", pongo2.NewFSLoader(templates))
	shell, err := set.FromFile(shellPage)
	if err != nil {
		return nil, fmt.Errorf("ui: load %s: %w", shellPage, err)
	}
	return &Renderer{shell: shell}, nil
}

// Render produces the page for the given fields, grouped in their render order.
func (r *Renderer) Render(fields []sliceform.Field) ([]byte, error) {
	page, err := r.shell.ExecuteBytes(pongo2.Context{
		"title":    PageTitle,
		"action":   SubmitAction,
		"sections": Sections(fields),
	})
	if err != nil {
		return nil, fmt.Errorf("ui: render %s: %w", shellPage, err)
	}
	return page, nil
}

func Sections(fields []sliceform.Field) []Section {
	var sections []Section
	for _, f := range fields {
		if n := len(sections); n > 0 && sections[n-1].Title == f.Section {
			sections[n-1].Fields = append(sections[n-1].Fields, f)
			continue
		}
		sections = append(sections, Section{Title: f.Section, Fields: []sliceform.Field{f}})
	}
	return sections
}
