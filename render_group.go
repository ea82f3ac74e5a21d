// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"fmt"
	"strings"
)

// GroupRenderOptions configures the recursive group section renderer.
type GroupRenderOptions struct {
	// DepthChar marks nesting depth inside spec tables; default ".".
	DepthChar string
	// Level is the heading level for group sections; the zero value is
	// LevelParagraph.
	Level HeadingLevel
	// HideTableTitles suppresses the table captions.
	HideTableTitles bool
	// FullTopDoc renders complete top-row doc strings inside tables.
	FullTopDoc bool
	// InlineSubgroups lists subgroups inside the main table instead of a
	// separate subgroup table.
	InlineSubgroups bool
}

// NamespaceRenderOptions configures the namespace overview renderer.
type NamespaceRenderOptions struct {
	// HideSource suppresses the YAML source block of the namespace.
	HideSource bool
	// HierarchyIncludeHTML is an optional include path for the type
	// hierarchy fragment in html builds.
	HierarchyIncludeHTML string
	// HierarchyIncludeLatex is an optional include path for the type
	// hierarchy fragment in latex builds.
	HierarchyIncludeLatex string
}

// RenderGroup renders one group and all its nested subgroups as headed
// sections with overview tables.
func RenderGroup(doc *Document, group *GroupSpec, opt GroupRenderOptions) error {
	if opt.DepthChar == "" {
		opt.DepthChar = "."
	}

	return renderGroupLevel(doc, group, "", opt)
}

// renderGroupLevel renders one group section and recurses into subgroups
// with the parent path extended by this group.
func renderGroupLevel(doc *Document, group *GroupSpec, parent string, opt GroupRenderOptions) error {
	name, err := groupDisplayName(group)
	if err != nil {
		return err
	}

	doc.AddHeading("Groups: "+parent+name, opt.Level)

	text := CleanDocString(group.Doc, CleanOptions{
		Prefix:  Newline + Newline,
		Postfix: Newline,
	})
	text += Newline
	text += SpecProperties(group, PropertyOptions{Ignore: []string{PropPrimitiveType}})
	text += Newline
	doc.AddText(text)

	// Tables of a documented type carry reference labels; nested named
	// groups stay unlabeled to keep anchors unique.
	dataLabel := ""
	groupLabel := ""
	if group.TypeDef != "" {
		dataLabel = DataTableLabel(group.TypeDef)
		groupLabel = GroupTableLabel(group.TypeDef)
	}

	dataTable := SpecTable(group, SpecTableOptions{
		DepthChar:     opt.DepthChar,
		ShowSubgroups: opt.InlineSubgroups,
		FullTopDoc:    opt.FullTopDoc,
	})
	// A single row repeats only the group itself; skip the table then.
	if dataTable.NumRows() > 1 {
		title := ""
		if !opt.HideTableTitles {
			if opt.InlineSubgroups {
				title = fmt.Sprintf("Groups, Datasets, and Attributes contained in ``%s%s``", parent, name)
			} else {
				title = fmt.Sprintf("Datasets, Links, and Attributes contained in ``%s%s``", parent, name)
			}
		}

		doc.AddTable(dataTable, TableOptions{
			Title:        title,
			Label:        dataLabel,
			LatexColumns: LatexSpecTableColumns,
		})
	}

	if !opt.InlineSubgroups {
		groupTable := SpecTable(group, SpecTableOptions{
			DepthChar:      opt.DepthChar,
			HideAttributes: true,
			HideDatasets:   true,
			ShowSubgroups:  true,
			FullTopDoc:     opt.FullTopDoc,
		})
		if groupTable.NumRows() > 1 {
			title := ""
			if !opt.HideTableTitles {
				title = fmt.Sprintf("Groups contained in <%s>", name)
			}

			doc.AddTable(groupTable, TableOptions{
				Title:        title,
				Label:        groupLabel,
				LatexColumns: LatexSpecTableColumns,
			})
		}
	}

	for _, subgroup := range group.Groups {
		if err := renderGroupLevel(doc, subgroup, parent+name+"/", opt); err != nil {
			return err
		}
	}

	return nil
}

// groupDisplayName resolves the display name of a group: its explicit
// name, or the defined/extended type in angle brackets.
func groupDisplayName(group *GroupSpec) (string, error) {
	switch {
	case group.Name != "":
		return group.Name, nil
	case group.TypeDef != "":
		return "<" + group.TypeDef + ">", nil
	case group.TypeInc != "":
		return "<" + group.TypeInc + ">", nil
	default:
		return "", ErrGroupName
	}
}

// RenderHierarchy renders the flattened type hierarchy as a nested bullet
// list of cross-referenced type names. Label or title may be empty to
// skip the anchor or heading.
func RenderHierarchy(doc *Document, catalog *Catalog, label, title string) []*TypeNode {
	hierarchy := catalog.Hierarchy()

	if label != "" {
		doc.AddLabel(label)
	}

	if title != "" {
		doc.AddSubsection(title)
	}

	addHierarchyLevel(doc, hierarchy, 0)
	doc.AddText(Newline + Newline)
	return hierarchy
}

// addHierarchyLevel renders one depth level of the type hierarchy list.
func addHierarchyLevel(doc *Document, nodes []*TypeNode, depth int) {
	for _, node := range nodes {
		item := strings.Repeat("   ", depth) + "* "
		item += Reference(TypeLabel(node.Name), node.Name)
		item += Newline
		doc.AddText(item)
		if len(node.Subtypes) > 0 {
			doc.AddNewline()
			addHierarchyLevel(doc, node.Subtypes, depth+1)
		}
	}
}

// RenderNamespace renders the namespace overview into descDoc and the
// namespace YAML source into srcDoc. Passing the same document twice (or a
// nil srcDoc) renders both parts into one document; with two distinct
// documents the sections cross-link via numbered references.
func RenderNamespace(descDoc, srcDoc *Document, ns *Namespace, opt NamespaceRenderOptions) error {
	separateSource := srcDoc != nil && srcDoc != descDoc
	if srcDoc == nil && !opt.HideSource {
		srcDoc = descDoc
	}

	heading := "Namespace -- " + ns.Name
	if ns.FullName != "" {
		heading = "Namespace -- " + ns.FullName
	}

	descDoc.AddSection("Format Overview")
	descDoc.AddLabel(NamespaceLabel)
	descDoc.AddSubsection(heading)
	if separateSource {
		descDoc.AddText("**Source Specification:** see " +
			NumberedReference(NamespaceSourceLabel) + Newline + Newline)
	}

	if items := namespaceMetadata(ns); len(items) > 0 {
		descDoc.AddList(items, "-")
	}

	renderHierarchyIncludes(descDoc, opt)

	if srcDoc == nil {
		return nil
	}

	if separateSource {
		srcDoc.AddLabel(NamespaceSourceLabel)
		srcDoc.AddSubsection(heading)
		srcDoc.AddText("**Description:** see " +
			NumberedReference(NamespaceLabel) + Newline + Newline)
	}

	if !opt.HideSource {
		srcDoc.AddText("**YAML Specification:**" + Newline + Newline)
		if err := srcDoc.AddYAML(ns); err != nil {
			return err
		}
	}

	return nil
}

// namespaceMetadata builds the bullet list describing namespace metadata.
func namespaceMetadata(ns *Namespace) []ListItem {
	items := make([]ListItem, 0, 8)
	add := func(label, value string) {
		if value != "" {
			items = append(items, ListItem{Text: "**" + label + ":** " + value})
		}
	}

	add("Description", ns.Doc)
	add("Name", ns.Name)
	add("Full Name", ns.FullName)
	add("Version", ns.Version)
	add("Date", ns.Date)
	items = append(items, nameListItem("Author", "Authors", ns.Authors)...)
	items = append(items, nameListItem("Contact", "Contacts", ns.Contacts)...)

	if len(ns.Schema) > 0 {
		schema := ListItem{Text: "**Schema:**"}
		for _, source := range ns.Schema {
			schema.Items = append(schema.Items, ListItem{Text: schemaSourceText(source)})
		}

		items = append(items, schema)
	}

	return items
}

// nameListItem renders one name as an inline item and several names as a
// labeled sublist.
func nameListItem(singular, plural string, names StringList) []ListItem {
	switch len(names) {
	case 0:
		return nil
	case 1:
		return []ListItem{{Text: "**" + singular + ":** " + names[0]}}
	default:
		item := ListItem{Text: "**" + plural + ":**"}
		for _, name := range names {
			item.Items = append(item.Items, ListItem{Text: name})
		}

		return []ListItem{item}
	}
}

// schemaSourceText renders one schema list entry as inline key/value text.
func schemaSourceText(source SchemaSource) string {
	parts := make([]string, 0, 4)
	add := func(label, value string) {
		if value != "" {
			parts = append(parts, "**"+label+":** "+value)
		}
	}

	add("source", source.Source)
	add("namespace", source.Namespace)
	add("title", source.Title)
	if len(source.DataTypes) > 0 {
		add("data_types", strings.Join(source.DataTypes, ", "))
	}

	return strings.Join(parts, " ")
}

// renderHierarchyIncludes emits the optional hierarchy include fragments,
// with build-specific "only" guards when html and latex variants differ.
func renderHierarchyIncludes(doc *Document, opt NamespaceRenderOptions) {
	html := opt.HierarchyIncludeHTML
	latex := opt.HierarchyIncludeLatex
	if html == "" && latex == "" {
		return
	}

	if html == latex {
		doc.AddInclude(html, "")
		return
	}

	if html != "" {
		doc.AddText(".. only:: html" + Newline + Newline)
		doc.AddInclude(html, DefaultIndent)
		doc.AddNewline()
	}

	if latex != "" {
		doc.AddText(".. only:: latex" + Newline + Newline)
		doc.AddInclude(latex, DefaultIndent)
		doc.AddNewline()
	}
}
