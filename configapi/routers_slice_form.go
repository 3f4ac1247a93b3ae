// SPDX-License-Identifier: Apache-2.0
// Copyright 2025 Canonical Ltd.

package configapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/slice-webconsole/backend/webui_context"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is the list of the generated Route.
type Routes []Route

// AddSliceFormService registers the endpoints that edit and submit mounted forms.
func AddSliceFormService(engine *gin.Engine, ctx *webui_context.WEBUIContext) *gin.RouterGroup {
	group := engine.Group("/form")
	addRoutes(group, sliceFormRoutes(ctx))
	return group
}

func addRoutes(group *gin.RouterGroup, routes Routes) {
	for _, route := range routes {
		switch route.Method {
		case http.MethodGet:
			group.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			group.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			group.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			group.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
}

func sliceFormRoutes(ctx *webui_context.WEBUIContext) Routes {
	return Routes{
		{
			"GetSliceFormDraft",
			http.MethodGet,
			"/draft",
			GetSliceFormDraft(ctx),
		},
		{
			"PatchSliceFormField",
			http.MethodPatch,
			"/fields",
			PatchSliceFormField(ctx),
		},
		{
			"PostSliceFormSubmit",
			http.MethodPost,
			"/submit",
			PostSliceFormSubmit(ctx),
		},
		{
			"DeleteSliceForm",
			http.MethodDelete,
			"",
			DeleteSliceForm(ctx),
		},
	}
}
