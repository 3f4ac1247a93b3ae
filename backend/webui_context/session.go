// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package webui_context

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "slice_form_session"

// SessionID returns the session id sent by the browser, or "".
func SessionID(c *gin.Context) string {
	id, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return id
}

func SetSessionCookie(c *gin.Context, id string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(SessionCookieName, id, 0, "/", "", false, true)
}
