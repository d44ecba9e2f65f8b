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

// veldtfmt formats Veldt signature files.
//
// A signature file carries one path or type expression per line; blank
// lines and lines starting with # pass through untouched. Each expression
// is rewritten in canonical form, wrapped against the configured column
// limit.
//
// Usage:
//
//	veldtfmt [-w] [-width n] [files...]
//
// With no files, veldtfmt reads standard input and writes standard
// output. With -w, files are rewritten in place.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/veldtlang/veldtfmt/internal/ext/iterx"
	"github.com/veldtlang/veldtfmt/internal/ext/stringsx"
	"github.com/veldtlang/veldtfmt/parser"
	"github.com/veldtlang/veldtfmt/printer"
)

var (
	write = flag.Bool("w", false, "rewrite files in place instead of printing to stdout")
	width = flag.Int("width", 0, "column limit to wrap against; 0 disables wrapping")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "veldtfmt:", err)
		os.Exit(1)
	}
}

func run(files []string) error {
	options := printer.Options{MaxWidth: *width}

	if len(files) == 0 {
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		out, err := format(string(src), options)
		if err != nil {
			return err
		}
		_, err = os.Stdout.WriteString(out)
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, file := range files {
		g.Go(func() error {
			if err := formatFile(file, options); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func formatFile(file string, options printer.Options) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	out, err := format(string(src), options)
	if err != nil {
		return err
	}

	if !*write {
		_, err = os.Stdout.WriteString(out)
		return err
	}
	if out == string(src) {
		return nil
	}
	return os.WriteFile(file, []byte(out), 0o666)
}

// format rewrites each expression line of a signature file in canonical
// form.
func format(src string, options printer.Options) (string, error) {
	var out strings.Builder
	for i, line := range iterx.Enumerate(stringsx.Split(src, '\n')) {
		// Split yields one final empty chunk for the trailing newline.
		if i > 0 {
			out.WriteByte('\n')
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			out.WriteString(line)
			continue
		}

		ty, err := parser.ParseType(trimmed)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		out.WriteString(printer.Type(options, ty))
	}
	return out.String(), nil
}
