// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 Canonical Ltd.

package webui_service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/omec-project/slice-webconsole/backend/sliceform"
	"github.com/omec-project/slice-webconsole/backend/webui_context"
	"github.com/omec-project/slice-webconsole/configapi"
	"github.com/omec-project/slice-webconsole/ui"
)

// AddUiService serves the page shell. Every load of / mounts a fresh form for
// the caller's session; the form page shows the mounted draft as it is.
func AddUiService(engine *gin.Engine, ctx *webui_context.WEBUIContext, renderer *ui.Renderer) {
	logger.WebUILog.Infoln("Adding UI service")
	engine.StaticFS("/static", http.FS(ui.StaticFS()))
	engine.GET("/", func(c *gin.Context) {
		sessionID, form := ctx.Mount(webui_context.SessionID(c))
		webui_context.SetSessionCookie(c, sessionID)
		renderForm(c, renderer, form)
	})
	engine.GET(configapi.FormPagePath, func(c *gin.Context) {
		form, ok := ctx.Lookup(webui_context.SessionID(c))
		if !ok {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		renderForm(c, renderer, form)
	})
}

func renderForm(c *gin.Context, renderer *ui.Renderer, form *sliceform.Controller) {
	page, err := renderer.Render(form.Fields())
	if err != nil {
		logger.WebUILog.Errorln(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render slice form"})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}
