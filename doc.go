// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

/*
Package rstdoc renders reStructuredText documentation from hierarchical
schema specifications.

The package walks a catalog of typed specifications (groups, datasets,
attributes, links, references) and produces deterministic RST output:
headed sections, grid tables, cross-reference labels and YAML source
blocks, assembled into one or more documents.

Load a namespace and build the full documentation tree:

	namespaces, err := rstdoc.LoadNamespaces("spec/namespace.yaml")
	if err != nil {
		return err
	}

	catalog, err := rstdoc.BuildCatalog("spec", namespaces[0])
	if err != nil {
		return err
	}

	builder := rstdoc.NewBuilder(namespaces[0], catalog, rstdoc.BuildOptions{
		OutputDir:      "docs/source",
		SeparateSource: true,
		FilePerType:    true,
	})
	if err := builder.Build(); err != nil {
		return err
	}

Build a single document by hand:

	doc := rstdoc.NewDocument()
	doc.AddSection("Format Overview")
	doc.AddLabel(rstdoc.TypeLabel("TimeSeries"))

	table := rstdoc.NewTable("Id", "Type", "Description")
	table.AddRow("data", "Dataset", "Recorded values.")
	doc.AddTable(table, rstdoc.TableOptions{Title: "Members"})

	if err := doc.WriteFile("overview.rst"); err != nil {
		return err
	}

Render one group specification recursively:

	err := rstdoc.RenderGroup(doc, group, rstdoc.GroupRenderOptions{
		Level: rstdoc.LevelSubsection,
	})
	if err != nil {
		return err
	}
*/
package rstdoc
