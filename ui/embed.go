// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 Canonical Ltd.

package ui

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var files embed.FS

func TemplatesFS() fs.FS {
	sub, err := fs.Sub(files, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

func StaticFS() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
