// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package configapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/omec-project/slice-webconsole/backend/sliceform"
	"github.com/omec-project/slice-webconsole/backend/webui_context"
	"github.com/omec-project/slice-webconsole/configmodels"
)

const (
	errNoFormMounted = "no slice form mounted for this session"

	// FormPagePath renders the mounted draft without remounting it.
	FormPagePath = "/form"
)

func mountedForm(ctx *webui_context.WEBUIContext, c *gin.Context) (*sliceform.Controller, bool) {
	form, ok := ctx.Lookup(webui_context.SessionID(c))
	if !ok {
		logger.WebUILog.Warnln(errNoFormMounted)
		c.JSON(http.StatusNotFound, gin.H{"error": errNoFormMounted})
	}
	return form, ok
}

// GetSliceFormDraft godoc
//
// @Description Return the slice profile draft of the mounted form
// @Tags        Slice Form
// @Produce     json
// @Success     200  {object}  configmodels.SliceProfileDraft  "Current draft"
// @Failure     404  {object}  nil                             "No form mounted"
// @Router      /form/draft  [get]
func GetSliceFormDraft(ctx *webui_context.WEBUIContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, ok := mountedForm(ctx, c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, form.Draft())
	}
}

// PatchSliceFormField godoc
//
// @Description Set one field of the mounted slice profile draft
// @Tags        Slice Form
// @Accept      json
// @Produce     json
// @Param       field  body      configmodels.FieldUpdateRequest  true  "Input name and raw value"
// @Success     200    {object}  configmodels.SliceProfileDraft   "Updated draft"
// @Failure     400    {object}  nil                              "Malformed request or unknown field"
// @Failure     404    {object}  nil                              "No form mounted"
// @Router      /form/fields  [patch]
func PatchSliceFormField(ctx *webui_context.WEBUIContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, ok := mountedForm(ctx, c)
		if !ok {
			return
		}
		var request configmodels.FieldUpdateRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.WebUILog.Warnf("failed to bind field update: %v", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid field update request"})
			return
		}
		if err := form.UpdateByName(request.Name, request.Value); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, form.Draft())
	}
}

// PostSliceFormSubmit godoc
//
// @Description Send the mounted draft to the slice API. Urlencoded form fields in the
// @Description body are applied first. The outcome is only logged. A plain browser form
// @Description post is redirected back to the form page.
// @Tags        Slice Form
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Success     202  {object}  nil  "Submission accepted"
// @Success     303  "Redirect to the form page"
// @Failure     400  {object}  nil  "Unknown field in form body"
// @Failure     404  {object}  nil  "No form mounted"
// @Router      /form/submit  [post]
func PostSliceFormSubmit(ctx *webui_context.WEBUIContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, ok := mountedForm(ctx, c)
		if !ok {
			return
		}
		if err := applyFormBody(c, form); err != nil {
			logger.WebUILog.Warnln(err)
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.WebUILog.Infoln("submitting slice profile")
		// the submission outlives this request
		form.Submit(context.WithoutCancel(c.Request.Context()))
		if isPageSubmit(c) {
			c.Redirect(http.StatusSeeOther, FormPagePath)
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"message": "submission accepted"})
	}
}

// isPageSubmit reports a form post made by the browser itself rather than by script.
func isPageSubmit(c *gin.Context) bool {
	return c.ContentType() == gin.MIMEPOSTForm && c.GetHeader("X-Requested-With") == ""
}

// applyFormBody applies the urlencoded fields of a script-less submit. Every
// name is checked before any field changes.
func applyFormBody(c *gin.Context, form *sliceform.Controller) error {
	if c.ContentType() != gin.MIMEPOSTForm {
		return nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return fmt.Errorf("parse form body: %w", err)
	}
	updates := make(map[sliceform.FieldID]string, len(c.Request.PostForm))
	for name, values := range c.Request.PostForm {
		id, err := sliceform.LookupField(name)
		if err != nil {
			return err
		}
		if len(values) > 0 {
			updates[id] = values[len(values)-1]
		}
	}
	for id, value := range updates {
		if err := form.Update(id, value); err != nil {
			return err
		}
	}
	return nil
}

// DeleteSliceForm godoc
//
// @Description Discard the mounted slice profile draft
// @Tags        Slice Form
// @Success     204  "Form unmounted"
// @Failure     404  {object}  nil  "No form mounted"
// @Router      /form  [delete]
func DeleteSliceForm(ctx *webui_context.WEBUIContext) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !ctx.Unmount(webui_context.SessionID(c)) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNoFormMounted})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
