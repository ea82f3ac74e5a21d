// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// KindGroup marks group specification nodes.
	KindGroup Kind = "Group"
	// KindDataset marks dataset specification nodes.
	KindDataset Kind = "Dataset"
	// KindAttribute marks attribute specification nodes.
	KindAttribute Kind = "Attribute"
	// KindLink marks link specification nodes.
	KindLink Kind = "Link"
	// KindRef marks reference type descriptors.
	KindRef Kind = "Ref"
)

// Kind names the primitive kind of a specification node.
type Kind string

// Spec is implemented by every specification node type.
type Spec interface {
	Kind() Kind
}

// Quantity is a cardinality marker from the schema. It holds either a
// symbolic value ("*", "+", "?", "zero_or_more", "one_or_more",
// "zero_or_one") or a decimal integer.
type Quantity string

// UnmarshalYAML accepts both integer and symbolic quantity values.
func (q *Quantity) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err == nil {
		*q = Quantity(text)
		return nil
	}

	var count int
	if err := node.Decode(&count); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeSpec, err)
	}

	*q = Quantity(strconv.Itoa(count))
	return nil
}

// StringList accepts both a single scalar and a sequence of scalars.
type StringList []string

// UnmarshalYAML decodes either one string or a string sequence.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	var single string
	if err := node.Decode(&single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := node.Decode(&many); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeSpec, err)
	}

	*l = StringList(many)
	return nil
}

// RefSpec describes a reference data type pointing at another documented type.
type RefSpec struct {
	// TargetType is the name of the referenced type.
	TargetType string `yaml:"target_type"`
	// RefType is the reference flavor, for example "object" or "region".
	RefType string `yaml:"reftype,omitempty"`
}

// Kind returns KindRef.
func (s *RefSpec) Kind() Kind {
	return KindRef
}

// CompoundElem is one named element of a compound data type.
type CompoundElem struct {
	Name  string `yaml:"name"`
	Doc   string `yaml:"doc,omitempty"`
	Dtype Dtype  `yaml:"dtype,omitempty"`
}

// Dtype is a data type descriptor. Exactly one of the fields is set:
// Primitive for scalar types, Compound for element lists, Ref for
// reference types.
type Dtype struct {
	Primitive string
	Compound  []CompoundElem
	Ref       *RefSpec
}

// IsZero reports whether no type information is present. yaml.v3 consults
// this for omitempty handling.
func (d Dtype) IsZero() bool {
	return d.Primitive == "" && len(d.Compound) == 0 && d.Ref == nil
}

// UnmarshalYAML decodes scalar, sequence and mapping dtype forms.
func (d *Dtype) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Primitive)
	case yaml.SequenceNode:
		return node.Decode(&d.Compound)
	case yaml.MappingNode:
		d.Ref = &RefSpec{}
		return node.Decode(d.Ref)
	default:
		return fmt.Errorf("%w: unsupported dtype node", ErrDecodeSpec)
	}
}

// MarshalYAML restores the original compact dtype form.
func (d Dtype) MarshalYAML() (any, error) {
	switch {
	case len(d.Compound) > 0:
		return d.Compound, nil
	case d.Ref != nil:
		return d.Ref, nil
	default:
		return d.Primitive, nil
	}
}

// AttributeSpec describes one attribute of a group or dataset.
type AttributeSpec struct {
	Name         string     `yaml:"name,omitempty"`
	Doc          string     `yaml:"doc,omitempty"`
	Dtype        Dtype      `yaml:"dtype,omitempty"`
	Dims         ShapeValue `yaml:"dims,omitempty"`
	Shape        ShapeValue `yaml:"shape,omitempty"`
	Required     *bool      `yaml:"required,omitempty"`
	Value        any        `yaml:"value,omitempty"`
	DefaultValue any        `yaml:"default_value,omitempty"`
}

// Kind returns KindAttribute.
func (s *AttributeSpec) Kind() Kind {
	return KindAttribute
}

// LinkSpec describes one link inside a group.
type LinkSpec struct {
	Name       string   `yaml:"name,omitempty"`
	Doc        string   `yaml:"doc,omitempty"`
	TargetType string   `yaml:"target_type"`
	Quantity   Quantity `yaml:"quantity,omitempty"`
}

// Kind returns KindLink.
func (s *LinkSpec) Kind() Kind {
	return KindLink
}

// DatasetSpec describes one dataset, either named inside a group or as a
// documented type definition.
type DatasetSpec struct {
	Name        string           `yaml:"name,omitempty"`
	DefaultName string           `yaml:"default_name,omitempty"`
	TypeDef     string           `yaml:"data_type_def,omitempty"`
	TypeInc     string           `yaml:"data_type_inc,omitempty"`
	Doc         string           `yaml:"doc,omitempty"`
	Quantity    Quantity         `yaml:"quantity,omitempty"`
	Dtype       Dtype            `yaml:"dtype,omitempty"`
	Dims        ShapeValue       `yaml:"dims,omitempty"`
	Shape       ShapeValue       `yaml:"shape,omitempty"`
	Linkable    *bool            `yaml:"linkable,omitempty"`
	Attributes  []*AttributeSpec `yaml:"attributes,omitempty"`
}

// Kind returns KindDataset.
func (s *DatasetSpec) Kind() Kind {
	return KindDataset
}

// GroupSpec describes one group with its nested members.
type GroupSpec struct {
	Name        string           `yaml:"name,omitempty"`
	DefaultName string           `yaml:"default_name,omitempty"`
	TypeDef     string           `yaml:"data_type_def,omitempty"`
	TypeInc     string           `yaml:"data_type_inc,omitempty"`
	Doc         string           `yaml:"doc,omitempty"`
	Quantity    Quantity         `yaml:"quantity,omitempty"`
	Linkable    *bool            `yaml:"linkable,omitempty"`
	Attributes  []*AttributeSpec `yaml:"attributes,omitempty"`
	Datasets    []*DatasetSpec   `yaml:"datasets,omitempty"`
	Links       []*LinkSpec      `yaml:"links,omitempty"`
	Groups      []*GroupSpec     `yaml:"groups,omitempty"`
}

// Kind returns KindGroup.
func (s *GroupSpec) Kind() Kind {
	return KindGroup
}

// ShapeValue holds dims or shape metadata: a flat list or a list of
// alternative lists, with null entries for unconstrained axes.
type ShapeValue []any

// IsZero reports whether no shape information is present.
func (v ShapeValue) IsZero() bool {
	return len(v) == 0
}

// String renders the shape as a bracketed list, nested alternatives
// included.
func (v ShapeValue) String() string {
	return formatShapeList([]any(v))
}

// formatShapeList renders one nesting level of a shape list.
func formatShapeList(values []any) string {
	out := "["
	for i, value := range values {
		if i > 0 {
			out += ", "
		}

		switch typed := value.(type) {
		case nil:
			out += "null"
		case []any:
			out += formatShapeList(typed)
		default:
			out += fmt.Sprintf("%v", typed)
		}
	}

	return out + "]"
}

// SchemaSource is one source file entry of a namespace schema list.
type SchemaSource struct {
	// Source is the specification file name.
	Source string `yaml:"source,omitempty"`
	// Title overrides the section title derived from Source.
	Title string `yaml:"title,omitempty"`
	// Doc is introduction text for the section built from this source.
	Doc string `yaml:"doc,omitempty"`
	// Namespace references types of another namespace instead of a file.
	Namespace string `yaml:"namespace,omitempty"`
	// DataTypes optionally restricts the included types.
	DataTypes StringList `yaml:"data_types,omitempty"`
}

// Namespace is a named collection of specification sources plus metadata.
type Namespace struct {
	Name     string         `yaml:"name"`
	FullName string         `yaml:"full_name,omitempty"`
	Doc      string         `yaml:"doc,omitempty"`
	Version  string         `yaml:"version,omitempty"`
	Date     string         `yaml:"date,omitempty"`
	Authors  StringList     `yaml:"author,omitempty"`
	Contacts StringList     `yaml:"contact,omitempty"`
	Schema   []SchemaSource `yaml:"schema,omitempty"`
}

// SourceFile is the top level structure of one specification source file.
type SourceFile struct {
	Groups   []*GroupSpec   `yaml:"groups,omitempty"`
	Datasets []*DatasetSpec `yaml:"datasets,omitempty"`
}

// specName returns the explicit name of a node, or empty when unnamed.
func specName(spec Spec) string {
	switch typed := spec.(type) {
	case *GroupSpec:
		return typed.Name
	case *DatasetSpec:
		return typed.Name
	case *AttributeSpec:
		return typed.Name
	case *LinkSpec:
		return typed.Name
	default:
		return ""
	}
}

// specDoc returns the free-text documentation of a node.
func specDoc(spec Spec) string {
	switch typed := spec.(type) {
	case *GroupSpec:
		return typed.Doc
	case *DatasetSpec:
		return typed.Doc
	case *AttributeSpec:
		return typed.Doc
	case *LinkSpec:
		return typed.Doc
	default:
		return ""
	}
}

// specTypeDef returns the defined type identifier of a node.
func specTypeDef(spec Spec) string {
	switch typed := spec.(type) {
	case *GroupSpec:
		return typed.TypeDef
	case *DatasetSpec:
		return typed.TypeDef
	default:
		return ""
	}
}

// specTypeInc returns the extended type identifier of a node.
func specTypeInc(spec Spec) string {
	switch typed := spec.(type) {
	case *GroupSpec:
		return typed.TypeInc
	case *DatasetSpec:
		return typed.TypeInc
	default:
		return ""
	}
}
