// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

const (
	// NamespaceLabel anchors the namespace description section.
	NamespaceLabel = "type-namespace-doc"
	// NamespaceSourceLabel anchors the namespace source section.
	NamespaceSourceLabel = "type-namespace-src"
	// HierarchyLabel anchors the type hierarchy section.
	HierarchyLabel = "data-type-hierarchy"
)

// TypeLabel returns the label of the section documenting the given type.
func TypeLabel(dataType string) string {
	return "sec-" + dataType
}

// TypeSourceLabel returns the label of the section holding the YAML source
// of the given type. With a separate source document the source sections
// get their own labels; otherwise the description label is reused when the
// YAML source is shown at all, and the result is empty when it is not.
func TypeSourceLabel(dataType string, separateSource, showSource bool) string {
	if separateSource {
		return "sec-" + dataType + "-src"
	}

	if showSource {
		return TypeLabel(dataType)
	}

	return ""
}

// GroupTableLabel returns the label of the table listing the subgroups of
// the given parent type.
func GroupTableLabel(parent string) string {
	return "table-" + parent + "-groups"
}

// DataTableLabel returns the label of the table listing datasets, links
// and attributes of the given parent type.
func DataTableLabel(parent string) string {
	return "table-" + parent + "-data"
}
