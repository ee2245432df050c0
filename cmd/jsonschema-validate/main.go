// Command jsonschema-validate validates one or more JSON or YAML instance
// documents against a schema file and prints a colorized pass/fail report.
// It is a thin consumer of the jsonschema package's core: serialization,
// error formatting and terminal output are deliberately kept out of the
// core package itself (§1's scope note) and live here instead.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/moduleforge/jsonschema"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var assertFormat bool
	var locales []string

	cmd := &cobra.Command{
		Use:   "jsonschema-validate SCHEMA INSTANCE...",
		Short: "Validate JSON or YAML instances against a JSON Schema",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], args[1:], assertFormat, locales)
		},
	}
	cmd.Flags().BoolVar(&assertFormat, "assert-format", false, "treat format mismatches as errors")
	cmd.Flags().StringSliceVar(&locales, "locale", nil, "preferred locale(s) for error messages, most preferred first (default: en)")
	return cmd
}

func run(ctx context.Context, schemaPath string, instancePaths []string, assertFormat bool, locales []string) error {
	out := colorable.NewColorableStdout()
	schemaJSON, err := loadAsJSON(schemaPath)
	if err != nil {
		return fmt.Errorf("reading schema %s: %w", schemaPath, err)
	}

	v := jsonschema.NewValidator().WithAssertFormat(assertFormat)
	if len(locales) > 0 {
		v.WithLocale(locales...)
	}

	failed := 0
	for _, path := range instancePaths {
		instanceJSON, err := loadAsJSON(path)
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", color.RedString("ERROR"), path, err)
			failed++
			continue
		}
		result, err := v.Validate(ctx, schemaJSON, instanceJSON)
		if err != nil {
			fmt.Fprintf(out, "%s %s: %v\n", color.RedString("ERROR"), path, err)
			failed++
			continue
		}
		if result.IsValid() {
			fmt.Fprintf(out, "%s %s\n", color.GreenString("PASS"), path)
			continue
		}
		failed++
		fmt.Fprintf(out, "%s %s\n", color.RedString("FAIL"), path)
		for _, e := range result.Errors {
			fmt.Fprintf(out, "  %s %s\n", color.YellowString(e.Path.String()), e.Message)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d instances failed validation", failed, len(instancePaths))
	}
	return nil
}

// loadAsJSON reads path and, if it has a YAML extension, re-encodes it
// to JSON first so the rest of the pipeline only ever deals with one
// wire format, matching the content-media-type registry's own
// goccy/go-yaml usage (content.go).
func loadAsJSON(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return data, nil
	}
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
