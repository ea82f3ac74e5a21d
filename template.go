// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"unicode/utf8"
)

const (
	templateIndexName   = "index"
	templateCreditsName = "credits"
)

// templateFS stores built-in page templates embedded into the package.
//
//go:embed templates/*.rst.gotmpl
var templateFS embed.FS

// builtInTemplateFiles maps page template aliases to embedded file paths.
var builtInTemplateFiles = map[string]string{
	templateIndexName:   "templates/index.rst.gotmpl",
	templateCreditsName: "templates/credits.rst.gotmpl",
}

// pageView is the view model passed to master page templates.
type pageView struct {
	Title       string
	Namespace   string
	Version     string
	Description string
	Pages       []string
	Authors     []string
	Contacts    []string
}

// BuiltinTemplateNames returns all available page template names.
func BuiltinTemplateNames() []string {
	names := make([]string, 0, len(builtInTemplateFiles))
	for name := range builtInTemplateFiles {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// BuiltinTemplate returns one built-in page template by name.
func BuiltinTemplate(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	path, ok := builtInTemplateFiles[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownBuiltinTemplate, name)
	}

	data, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParseBuiltinTemplate, err)
	}

	return string(data), nil
}

// renderPage executes one built-in page template with the given view.
func renderPage(name string, view pageView) (string, error) {
	text, err := BuiltinTemplate(name)
	if err != nil {
		return "", err
	}

	parsed, err := template.New(name).Funcs(templateFuncs()).Parse(text)
	if err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrParseBuiltinTemplate, name, err)
	}

	var out strings.Builder
	if err := parsed.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrExecuteTemplate, name, err)
	}

	return ensureTrailingNewline(out.String()), nil
}

// templateFuncs provides utility functions available inside page templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"adorn": adornLine,
		"ref":   Reference,
	}
}

// adornLine builds a heading adornment line matching the title width.
func adornLine(title, style string) string {
	if style == "" {
		style = "="
	}

	return strings.Repeat(style, utf8.RuneCountInString(title))
}
