// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * WebUI Configuration Factory
 */

package factory

const (
	DefaultWebServerPort = 5001
	DefaultMetricsPort   = 8080
	DefaultSliceApiUrl   = "http://localhost:5000"
)

type Config struct {
	Info          *Info          `yaml:"info"`
	Configuration *Configuration `yaml:"configuration"`
	Logger        *Logger        `yaml:"logger"`
}

type Info struct {
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type Configuration struct {
	WebServer     *WebServer `yaml:"webServer,omitempty"`
	SliceApi      *SliceApi  `yaml:"sliceApi,omitempty"`
	MetricsPort   int        `yaml:"metricsPort,omitempty"`
	EnableSwagger bool       `yaml:"enableSwagger,omitempty"`
	OpenBrowser   bool       `yaml:"openBrowser,omitempty"`
}

type WebServer struct {
	Scheme string `yaml:"scheme,omitempty"`
	IP     string `yaml:"ipv4Address,omitempty"`
	Port   int    `yaml:"port,omitempty"`
}

// SliceApi points at the service that accepts slice profiles on /api/slice.
type SliceApi struct {
	Url string `yaml:"url,omitempty"`
}

type Logger struct {
	WEBUI *LogSetting `yaml:"WEBUI,omitempty"`
}

type LogSetting struct {
	DebugLevel string `yaml:"debugLevel,omitempty"`
}
