// Copyright 2025 The derisi-rotation Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sydneysbec/derisi-rotation/phipplot"
)

type groupsConfig struct {
	Diseased []string `yaml:"diseased"`
	Healthy  []string `yaml:"healthy"`
}

// loadGroups reads the diseased/healthy sample group definitions from
// a YAML file. Both groups must name at least one sample column.
func loadGroups(path string) (diseased, healthy phipplot.Group, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return phipplot.Group{}, phipplot.Group{}, err
	}
	var cfg groupsConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return phipplot.Group{}, phipplot.Group{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(cfg.Diseased) == 0 {
		return phipplot.Group{}, phipplot.Group{}, fmt.Errorf("%s: group \"diseased\" is missing or empty", path)
	}
	if len(cfg.Healthy) == 0 {
		return phipplot.Group{}, phipplot.Group{}, fmt.Errorf("%s: group \"healthy\" is missing or empty", path)
	}
	diseased = phipplot.Group{Label: "Diseased", Samples: cfg.Diseased}
	healthy = phipplot.Group{Label: "Healthy", Samples: cfg.Healthy}
	return diseased, healthy, nil
}
