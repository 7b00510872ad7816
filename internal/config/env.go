// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the MIRROR_* environment variables declared
// by the `env` and `envPrefix` tags of [StructuredConfig].
//
// Durations accept a plain number of seconds ("600") as well as Go duration
// strings ("10m"), like the -wait flag and the JSON "wait" field.
func parseEnv(cfg any) error {
	err := env.ParseWithOptions(cfg, env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(time.Duration(0)): func(v string) (any, error) {
				return parseSeconds(v)
			},
		},
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
