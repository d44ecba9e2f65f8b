// Copyright 2024-2026 The Veldt Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// enum is a helper for generating boilerplate related to Go enums.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/veldtlang/veldtfmt/internal/enum foo.yaml
//
// which reads foo.yaml, an array of the Enum type defined in this package,
// and writes foo.go next to it.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	_ "embed"

	"gopkg.in/yaml.v3"
)

// Enum describes a single generated enum type.
type Enum struct {
	Name   string  `yaml:"name"`   // The name of the new type.
	Type   string  `yaml:"type"`   // The underlying type.
	Docs   string  `yaml:"docs"`   // Documentation for the type.
	Values []Value `yaml:"values"` // The enum's values, in declaration order.
}

// Value is one value of an [Enum].
type Value struct {
	Name   string `yaml:"name"`   // The name of the value.
	String string `yaml:"string"` // Its string representation; defaults to Name.
	Docs   string `yaml:"docs"`   // Documentation for the value.
}

// Display returns the string representation this value renders as.
func (v Value) Display() string {
	if v.String == "" {
		return v.Name
	}
	return v.String
}

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts data into doc comments.
func makeDocs(data string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

func run(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	var input struct {
		Package, Config, Path string
		YAML                  []Enum
	}
	input.Package = os.Getenv("GOPACKAGE")
	input.Config = config
	input.Path = strings.TrimSuffix(config, ".yaml") + ".go"

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(text, &input.YAML); err != nil {
		return err
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
	}).Parse(tmplText)
	if err != nil {
		return err
	}

	out, err := os.Create(input.Path)
	if err != nil {
		return err
	}
	defer out.Close()
	return tmpl.ExecuteTemplate(out, "enum.go.tmpl", input)
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := run(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
