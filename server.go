// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/omec-project/slice-webconsole/backend/logger"
	"github.com/omec-project/slice-webconsole/backend/webui_service"
)

var WEBUI = &webui_service.WEBUI{}

var appLog *zap.SugaredLogger

func init() {
	appLog = logger.AppLog
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "webui"
	app.Usage = "-cfg slice webconsole configuration file"
	app.Action = action
	app.Flags = WEBUI.GetCliCmd()
	return app
}

func main() {
	app := newApp()
	appLog.Infoln(app.Name)
	if err := app.Run(os.Args); err != nil {
		appLog.Fatalf("webui run error: %v", err)
	}
}

func action(c *cli.Context) error {
	if err := WEBUI.Initialize(c); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, WEBUI)
}

// serve runs webui until it fails or ctx is done, then shuts it down.
func serve(ctx context.Context, webui *webui_service.WEBUI) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			appLog.Infoln("shutdown signal received")
			webui.Stop()
		case <-done:
		}
	}()
	return webui.Start()
}
