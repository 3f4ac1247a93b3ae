// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * WebUI Configuration Factory
 */

package factory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var WebUIConfig Config

func InitConfigFactory(f string) error {
	content, err := os.ReadFile(f)
	if err != nil {
		return fmt.Errorf("[Configuration] %+v", err)
	}
	cfg, err := ParseConfig(content)
	if err != nil {
		return err
	}
	WebUIConfig = *cfg
	return nil
}

// ParseConfig decodes a YAML document and fills in defaults for anything left out.
func ParseConfig(content []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("[Configuration] %+v", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Info == nil {
		c.Info = &Info{}
	}
	if c.Configuration == nil {
		c.Configuration = &Configuration{}
	}
	if c.Configuration.WebServer == nil {
		c.Configuration.WebServer = &WebServer{}
	}
	if c.Configuration.WebServer.Port == 0 {
		c.Configuration.WebServer.Port = DefaultWebServerPort
	}
	if c.Configuration.SliceApi == nil {
		c.Configuration.SliceApi = &SliceApi{}
	}
	if c.Configuration.SliceApi.Url == "" {
		c.Configuration.SliceApi.Url = DefaultSliceApiUrl
	}
	if c.Configuration.MetricsPort == 0 {
		c.Configuration.MetricsPort = DefaultMetricsPort
	}
}
