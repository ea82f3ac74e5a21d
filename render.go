// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"fmt"
	"slices"
	"strings"
)

// LatexSpecTableColumns is the tabularcolumns layout used for spec tables.
const LatexSpecTableColumns = "|p{4cm}|p{1cm}|p{10cm}|"

// Property keys accepted by PropertyOptions.Ignore.
const (
	PropTypeDef       = "data_type_def"
	PropTypeInc       = "data_type_inc"
	PropPrimitiveType = "primitive_type"
	PropQuantity      = "quantity"
	PropDtype         = "dtype"
	PropDims          = "dims"
	PropShape         = "shape"
	PropLinkable      = "linkable"
	PropRequired      = "required"
	PropValue         = "value"
	PropDefaultValue  = "default_value"
)

// PropertyOptions configures the rendered specification property list.
type PropertyOptions struct {
	// Newline is the line separator; empty selects Newline. Table cells
	// pass their own separator here.
	Newline string
	// Ignore lists property keys excluded from the output.
	Ignore []string
	// Prepend holds extra items placed before the spec properties.
	Prepend []string
	// Append holds extra items placed after the spec properties.
	Append []string
}

// SpecTableOptions configures the recursive spec overview table.
type SpecTableOptions struct {
	// DepthChar marks nesting depth in the Id column; default ".".
	DepthChar string
	// HideAttributes skips attribute rows.
	HideAttributes bool
	// HideDatasets skips dataset rows.
	HideDatasets bool
	// HideLinks skips link rows.
	HideLinks bool
	// ShowSubgroups adds rows for nested subgroups.
	ShowSubgroups bool
	// RecursiveSubgroups expands subgroup contents recursively; only
	// meaningful together with ShowSubgroups.
	RecursiveSubgroups bool
	// FullTopDoc renders the complete doc string for the top-level row
	// instead of the abbreviated summary.
	FullTopDoc bool
}

// QuantityText converts a schema quantity marker to display text.
func QuantityText(quantity Quantity) string {
	switch quantity {
	case "*", "zero_or_more":
		return "0 or more"
	case "+", "one_or_more":
		return "1 or more"
	case "?", "zero_or_one":
		return "0 or 1"
	default:
		return string(quantity)
	}
}

// DtypeText renders a data type descriptor: primitive types verbatim,
// compound types as a bullet list of named elements, and reference types
// as a cross-reference to the target type section.
func DtypeText(dtype Dtype) string {
	switch {
	case len(dtype.Compound) > 0:
		out := "Compound data type with the following elements: " + Newline
		for _, elem := range dtype.Compound {
			out += fmt.Sprintf("    * **%s:** %s (*dtype=* %s ) %s",
				elem.Name, elem.Doc, DtypeText(elem.Dtype), Newline)
		}

		return out + Newline
	case dtype.Ref != nil:
		return fmt.Sprintf("%s reference to %s", dtype.Ref.RefType,
			Reference(TypeLabel(dtype.Ref.TargetType), dtype.Ref.TargetType))
	default:
		return dtype.Primitive
	}
}

// SpecProperties renders the bullet list with the properties of one
// specification node, one "**Key:** value" item per line.
func SpecProperties(spec Spec, opt PropertyOptions) string {
	newline := opt.Newline
	if newline == "" {
		newline = Newline
	}

	ignored := func(key string) bool {
		return slices.Contains(opt.Ignore, key)
	}

	items := make([]string, 0, 12)
	items = append(items, opt.Prepend...)

	switch typed := spec.(type) {
	case *LinkSpec:
		items = append(items, "**Target Type** "+
			Reference(TypeLabel(typed.TargetType), typed.TargetType))
		if typed.Quantity != "" && !ignored(PropQuantity) {
			items = append(items, "**Quantity:** "+QuantityText(typed.Quantity))
		}
	case *DatasetSpec:
		if typed.TypeDef != "" && !ignored(PropTypeDef) {
			items = append(items, "**Documented Type:** "+typed.TypeDef)
		}

		if typed.TypeInc != "" && !ignored(PropTypeInc) {
			items = append(items, "**Extends:** "+
				Reference(TypeLabel(typed.TypeInc), typed.TypeInc))
		}

		if !ignored(PropPrimitiveType) {
			items = append(items, "**Primitive Type:** "+string(typed.Kind()))
		}

		if typed.Quantity != "" && !ignored(PropQuantity) {
			items = append(items, "**Quantity:** "+QuantityText(typed.Quantity))
		}

		if !typed.Dtype.IsZero() && !ignored(PropDtype) {
			items = append(items, "**Data Type:** "+DtypeText(typed.Dtype))
		}

		if len(typed.Dims) > 0 && !ignored(PropDims) {
			items = append(items, "**Dimensions:** "+typed.Dims.String())
		}

		if len(typed.Shape) > 0 && !ignored(PropShape) {
			items = append(items, "**Shape:** "+typed.Shape.String())
		}

		if typed.Linkable != nil && !ignored(PropLinkable) {
			items = append(items, "**Linkable:** "+boolText(*typed.Linkable))
		}
	case *GroupSpec:
		if typed.TypeDef != "" && !ignored(PropTypeDef) {
			items = append(items, "**Documented Type:** "+
				Reference(TypeLabel(typed.TypeDef), typed.TypeDef))
		}

		if typed.TypeInc != "" && !ignored(PropTypeInc) {
			items = append(items, "**Extends:** "+
				Reference(TypeLabel(typed.TypeInc), typed.TypeInc))
		}

		if !ignored(PropPrimitiveType) {
			items = append(items, "**Primitive Type:** "+string(typed.Kind()))
		}

		if typed.Quantity != "" && !ignored(PropQuantity) {
			items = append(items, "**Quantity:** "+QuantityText(typed.Quantity))
		}

		if typed.Linkable != nil && !ignored(PropLinkable) {
			items = append(items, "**Linkable:** "+boolText(*typed.Linkable))
		}
	case *AttributeSpec:
		if !ignored(PropPrimitiveType) {
			items = append(items, "**Primitive Type:** "+string(typed.Kind()))
		}

		if !typed.Dtype.IsZero() && !ignored(PropDtype) {
			items = append(items, "**Data Type:** "+DtypeText(typed.Dtype))
		}

		if len(typed.Dims) > 0 && !ignored(PropDims) {
			items = append(items, "**Dimensions:** "+typed.Dims.String())
		}

		if len(typed.Shape) > 0 && !ignored(PropShape) {
			items = append(items, "**Shape:** "+typed.Shape.String())
		}

		if typed.Required != nil && !ignored(PropRequired) {
			items = append(items, "**Required:** "+boolText(*typed.Required))
		}

		if typed.Value != nil && !ignored(PropValue) {
			items = append(items, fmt.Sprintf("**Value:** %v", typed.Value))
		}

		if typed.DefaultValue != nil && !ignored(PropDefaultValue) {
			items = append(items, fmt.Sprintf("**Default Value:** %v", typed.DefaultValue))
		}
	}

	if name := specDefaultName(spec); name != "" {
		items = append(items, "**Default Name:** "+name)
	}

	if name := specName(spec); name != "" {
		items = append(items, "**Name:** "+name)
	}

	items = append(items, opt.Append...)
	if len(items) == 0 {
		return ""
	}

	out := newline
	for _, item := range items {
		out += newline + "- " + item
	}

	return out + newline
}

// specDefaultName returns the default name of a node when present.
func specDefaultName(spec Spec) string {
	switch typed := spec.(type) {
	case *GroupSpec:
		return typed.DefaultName
	case *DatasetSpec:
		return typed.DefaultName
	default:
		return ""
	}
}

// boolText renders bool the way schema sources spell it.
func boolText(value bool) string {
	if value {
		return "True"
	}

	return "False"
}

// SpecTable builds the Id/Type/Description overview table for one
// specification node, recursing into members as configured.
func SpecTable(spec Spec, opt SpecTableOptions) *Table {
	if opt.DepthChar == "" {
		opt.DepthChar = "."
	}

	table := NewTable("Id", "Type", "Description")
	addSpecRows(table, spec, 0, opt)
	return table
}

// addSpecRows appends the row for one node and recurses into its members.
func addSpecRows(table *Table, spec Spec, depth int, opt SpecTableOptions) {
	name := strings.Repeat(opt.DepthChar, depth) + specTableName(spec)

	var doc string
	if depth == 0 && !opt.FullTopDoc {
		doc = fmt.Sprintf("Top level %s for %s", spec.Kind(), specTableName(spec))
	} else {
		doc = CleanDocString(specDoc(spec), CleanOptions{Prefix: Newline + Newline})
	}

	doc += SpecProperties(spec, PropertyOptions{
		Newline: Newline,
		Ignore:  []string{PropPrimitiveType},
	})

	table.AddRow(name, string(spec.Kind()), doc)

	var attributes []*AttributeSpec
	switch typed := spec.(type) {
	case *GroupSpec:
		attributes = typed.Attributes
	case *DatasetSpec:
		attributes = typed.Attributes
	}

	if !opt.HideAttributes {
		for _, attribute := range attributes {
			addSpecRows(table, attribute, depth+1, childRowOptions(opt))
		}
	}

	group, isGroup := spec.(*GroupSpec)
	if !isGroup {
		return
	}

	if !opt.HideDatasets {
		for _, dataset := range group.Datasets {
			addSpecRows(table, dataset, depth+1, childRowOptions(opt))
		}
	}

	if !opt.HideLinks {
		for _, link := range group.Links {
			addSpecRows(table, link, depth+1, childRowOptions(opt))
		}
	}

	if !opt.ShowSubgroups {
		return
	}

	for _, subgroup := range group.Groups {
		subOpt := childRowOptions(opt)
		if !opt.RecursiveSubgroups {
			// List the subgroup itself without expanding its members.
			subOpt.HideAttributes = true
			subOpt.HideDatasets = true
			subOpt.HideLinks = true
			subOpt.ShowSubgroups = false
		}

		addSpecRows(table, subgroup, depth+1, subOpt)
	}
}

// childRowOptions returns options for child rows: children always render
// their full doc string.
func childRowOptions(opt SpecTableOptions) SpecTableOptions {
	opt.FullTopDoc = true
	return opt
}

// specTableName resolves the Id column text for one node: the explicit
// name, the defined type in angle brackets, or the extended type as a
// cross-reference in angle brackets. Unnamed links fall back to their
// target type reference.
func specTableName(spec Spec) string {
	if name := specName(spec); name != "" {
		return name
	}

	if typeDef := specTypeDef(spec); typeDef != "" {
		return "<" + typeDef + ">"
	}

	if typeInc := specTypeInc(spec); typeInc != "" {
		return "<" + Reference(TypeLabel(typeInc), typeInc) + ">"
	}

	if link, ok := spec.(*LinkSpec); ok && link.TargetType != "" {
		return "<" + Reference(TypeLabel(link.TargetType), link.TargetType) + ">"
	}

	return "<unnamed>"
}
