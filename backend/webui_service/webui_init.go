// SPDX-FileCopyrightText: 2022-present Intel Corporation
// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// SPDX-FileCopyrightText: 2019 free5GC.org
// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package webui_service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/omec-project/slice-webconsole/backend/factory"
	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/omec-project/slice-webconsole/backend/metrics"
	"github.com/omec-project/slice-webconsole/backend/sliceapi"
	"github.com/omec-project/slice-webconsole/backend/webui_context"
	"github.com/omec-project/slice-webconsole/configapi"
	"github.com/omec-project/slice-webconsole/ui"
	"github.com/pkg/browser"
	"github.com/urfave/cli"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type WEBUI struct {
	mu      sync.Mutex
	server  *http.Server
	stopped bool
}

type (
	// Config information.
	Config struct {
		cfg string
	}
)

var config Config

var webuiCLi = []cli.Flag{
	cli.StringFlag{
		Name:     "cfg",
		Usage:    "webconsole config file",
		Required: true,
	},
}

var openBrowser = browser.OpenURL

func (*WEBUI) GetCliCmd() (flags []cli.Flag) {
	return webuiCLi
}

func (webui *WEBUI) Initialize(c *cli.Context) error {
	config = Config{
		cfg: c.String("cfg"),
	}

	absPath, err := filepath.Abs(config.cfg)
	if err != nil {
		logger.ConfigLog.Errorln(err)
		return err
	}

	if err := factory.InitConfigFactory(absPath); err != nil {
		logger.ConfigLog.Errorln(err)
		return err
	}

	webui.setLogLevel()
	return nil
}

func (webui *WEBUI) setLogLevel() {
	if factory.WebUIConfig.Logger == nil || factory.WebUIConfig.Logger.WEBUI == nil {
		logger.InitLog.Warnln("webconsole config without log level setting")
		return
	}

	if factory.WebUIConfig.Logger.WEBUI.DebugLevel != "" {
		if level, err := zapcore.ParseLevel(factory.WebUIConfig.Logger.WEBUI.DebugLevel); err != nil {
			logger.InitLog.Warnf("WebUI Log level [%s] is invalid, set to [info] level",
				factory.WebUIConfig.Logger.WEBUI.DebugLevel)
			logger.SetLogLevel(zap.InfoLevel)
		} else {
			logger.InitLog.Infof("WebUI Log level is set to [%s] level", level)
			logger.SetLogLevel(level)
		}
	} else {
		logger.InitLog.Warnln("WebUI Log level not set. Default set to [info] level")
		logger.SetLogLevel(zap.InfoLevel)
	}
}

// NewRouter wires the page shell and the form endpoints for cfg.
func NewRouter(cfg *factory.Configuration, ctx *webui_context.WEBUIContext) (*gin.Engine, error) {
	renderer, err := ui.NewRenderer()
	if err != nil {
		return nil, err
	}

	router := logger.NewGinWithZap(logger.GinLog)
	router.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS", "PATCH", "DELETE"},
		AllowHeaders: []string{
			"Origin", "Content-Length", "Content-Type", "User-Agent",
			"Referrer", "Host", "Token", "X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           86400,
	}))

	AddUiService(router, ctx, renderer)
	configapi.AddSliceFormService(router, ctx)
	if cfg.EnableSwagger {
		AddSwaggerUiService(router, cfg.WebServer.Port)
	}
	return router, nil
}

func (webui *WEBUI) Start() error {
	cfg := factory.WebUIConfig.Configuration
	if cfg == nil {
		return errors.New("webconsole configuration not loaded")
	}

	client := sliceapi.NewClient(cfg.SliceApi.Url, nil)
	logger.InitLog.Infoln("slice API endpoint", client.URL())
	ctx := webui_context.InitWEBUIContext(client)

	router, err := NewRouter(cfg, ctx)
	if err != nil {
		return err
	}

	go metrics.InitMetrics(cfg.MetricsPort)

	httpAddr := ":" + strconv.Itoa(cfg.WebServer.Port)
	server := &http.Server{
		Addr:    httpAddr,
		Handler: router,
	}
	webui.mu.Lock()
	if webui.stopped {
		webui.mu.Unlock()
		logger.InitLog.Infoln("Webserver stopped before start")
		return nil
	}
	webui.server = server
	webui.mu.Unlock()
	logger.InitLog.Infoln("Webui HTTP addr", httpAddr)

	if cfg.OpenBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			url := fmt.Sprintf("http://localhost:%d/", cfg.WebServer.Port)
			if err := openBrowser(url); err != nil {
				logger.InitLog.Warnf("could not open browser at %s: %v", url, err)
			}
		}()
	}

	logger.InitLog.Infoln("WebUI server started")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.InitLog.Errorln("HTTP server setup failed:", err)
		return err
	}
	logger.InitLog.Infoln("Webserver stopped/terminated/not-started")
	return nil
}

// Stop shuts the HTTP server down and makes Start return nil. Once stopped,
// a pending or later Start returns without serving.
func (webui *WEBUI) Stop() {
	webui.mu.Lock()
	webui.stopped = true
	server := webui.server
	webui.mu.Unlock()
	if server == nil {
		return
	}
	logger.InitLog.Infoln("Stopping webui server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.InitLog.Errorf("failed to stop webui server: %v", err)
	}
}
