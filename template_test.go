// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestBuiltinTemplateNames(t *testing.T) {
	t.Parallel()

	assert.DeepEqual(t, BuiltinTemplateNames(), []string{"credits", "index"})
}

func TestBuiltinTemplate(t *testing.T) {
	t.Parallel()

	text, err := BuiltinTemplate("index")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(text, ".. toctree::"))

	text, err = BuiltinTemplate(" Credits ")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(text, "Credits"))
}

func TestBuiltinTemplateUnknownName(t *testing.T) {
	t.Parallel()

	_, err := BuiltinTemplate("glossary")
	assert.ErrorIs(t, err, ErrUnknownBuiltinTemplate)
}

func TestRenderPageIndex(t *testing.T) {
	t.Parallel()

	got, err := renderPage(templateIndexName, pageView{
		Title:       "Core Data Format",
		Version:     "2.0.0",
		Description: "Data format for recordings.",
		Pages:       []string{"core_format", "core_format_source", "credits"},
	})
	assert.NilError(t, err)

	assert.Assert(t, strings.HasPrefix(got, "Core Data Format\n================\n"))
	assert.Assert(t, strings.Contains(got, "**Version:** 2.0.0\n"))
	assert.Assert(t, strings.Contains(got, "Data format for recordings.\n"))
	assert.Assert(t, strings.Contains(got, ".. toctree::\n    :maxdepth: 2\n"))
	assert.Assert(t, strings.Contains(got, "\n    core_format\n"))
	assert.Assert(t, strings.Contains(got, "\n    credits\n"))
	assert.Assert(t, strings.HasSuffix(got, "\n"))
}

func TestRenderPageIndexOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	got, err := renderPage(templateIndexName, pageView{
		Title: "Core",
		Pages: []string{"core_format"},
	})
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(got, "Version"))
}

func TestRenderPageCredits(t *testing.T) {
	t.Parallel()

	got, err := renderPage(templateCreditsName, pageView{
		Namespace: "core",
		Authors:   []string{"Jane Doe", "John Roe"},
		Contacts:  []string{"jane@example.org"},
	})
	assert.NilError(t, err)

	assert.Assert(t, strings.HasPrefix(got, "Credits\n=======\n"))
	assert.Assert(t, strings.Contains(got, "generated from the core format specification"))
	assert.Assert(t, strings.Contains(got, "**Authors**\n"))
	assert.Assert(t, strings.Contains(got, "* Jane Doe\n"))
	assert.Assert(t, strings.Contains(got, "**Contacts**\n"))
	assert.Assert(t, strings.Contains(got, "* jane@example.org\n"))
}

func TestRenderPageCreditsWithoutPeople(t *testing.T) {
	t.Parallel()

	got, err := renderPage(templateCreditsName, pageView{Namespace: "core"})
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(got, "Authors"))
	assert.Assert(t, !strings.Contains(got, "Contacts"))
}

func TestAdornLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, adornLine("Title", "="), "=====")
	assert.Equal(t, adornLine("ab", ""), "==")
}
