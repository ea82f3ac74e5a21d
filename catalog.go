// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Catalog indexes documented type specifications by name and tracks which
// source file defined each type. Registration order is preserved for
// deterministic output.
type Catalog struct {
	specs   map[string]Spec
	sources map[string]string
	order   []string
}

// TypeNode is one node of the flattened type hierarchy.
type TypeNode struct {
	Name     string
	Subtypes []*TypeNode
}

// Section groups the types of one source file for sectioned rendering.
type Section struct {
	// Title is the section heading; falls back to the source file name.
	Title string
	// Intro is optional introduction text for the section.
	Intro string
	// Source is the source file name the section was built from.
	Source string
	// DataTypes lists the type names defined in this source file.
	DataTypes []string
}

// namespaceFile is the top level structure of a namespace YAML file.
type namespaceFile struct {
	Namespaces []*Namespace `yaml:"namespaces"`
}

// NewCatalog returns an empty type catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		specs:   make(map[string]Spec),
		sources: make(map[string]string),
	}
}

// Register adds one documented type definition with its source file name.
// The node must carry a type definition identifier and must not collide
// with an already registered type.
func (c *Catalog) Register(spec Spec, source string) error {
	name := specTypeDef(spec)
	if name == "" {
		return fmt.Errorf("%w: %s node", ErrUnnamedType, spec.Kind())
	}

	if _, ok := c.specs[name]; ok {
		return fmt.Errorf("%w %q", ErrDuplicateType, name)
	}

	c.specs[name] = spec
	c.sources[name] = source
	c.order = append(c.order, name)
	return nil
}

// Types returns all registered type names in registration order.
func (c *Catalog) Types() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Spec returns the specification registered under the given type name.
func (c *Catalog) Spec(name string) (Spec, bool) {
	spec, ok := c.specs[name]
	return spec, ok
}

// Source returns the source file name that defined the given type.
func (c *Catalog) Source(name string) string {
	return c.sources[name]
}

// Len returns the number of registered types.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Hierarchy computes the flattened type extension hierarchy. Roots are
// types whose extended type is absent or not registered; children keep
// registration order. Trees are assumed acyclic.
func (c *Catalog) Hierarchy() []*TypeNode {
	children := make(map[string][]string)
	roots := make([]string, 0, len(c.order))
	for _, name := range c.order {
		parent := specTypeInc(c.specs[name])
		if _, ok := c.specs[parent]; parent == "" || !ok {
			roots = append(roots, name)
			continue
		}

		children[parent] = append(children[parent], name)
	}

	var build func(name string) *TypeNode
	build = func(name string) *TypeNode {
		node := &TypeNode{Name: name}
		for _, child := range children[name] {
			node.Subtypes = append(node.Subtypes, build(child))
		}

		return node
	}

	out := make([]*TypeNode, 0, len(roots))
	for _, name := range roots {
		out = append(out, build(name))
	}

	return out
}

// Sections sorts the registered types into one section per namespace
// source file. Section titles and intros come from the namespace schema
// entries; the title falls back to the source file name. Types defined by
// files outside the namespace schema list are not included.
func (c *Catalog) Sections(ns *Namespace) []Section {
	out := make([]Section, 0, len(ns.Schema))
	index := make(map[string]int)
	for _, source := range ns.Schema {
		if source.Source == "" {
			continue
		}

		title := source.Title
		if title == "" {
			title = source.Source
		}

		index[source.Source] = len(out)
		out = append(out, Section{
			Title:  title,
			Intro:  source.Doc,
			Source: source.Source,
		})
	}

	for _, name := range c.order {
		i, ok := index[c.sources[name]]
		if !ok {
			continue
		}

		out[i].DataTypes = append(out[i].DataTypes, name)
	}

	return out
}

// LoadNamespaces reads a namespace YAML file and returns all declared
// namespaces.
func LoadNamespaces(path string) ([]*Namespace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSpecFile, path, err)
	}

	var file namespaceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecodeSpec, path, err)
	}

	if len(file.Namespaces) == 0 {
		return nil, fmt.Errorf("%w %q: no namespaces declared", ErrDecodeSpec, path)
	}

	return file.Namespaces, nil
}

// LoadSourceFile reads one specification source file.
func LoadSourceFile(path string) (*SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrReadSpecFile, path, err)
	}

	var file SourceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrDecodeSpec, path, err)
	}

	return &file, nil
}

// BuildCatalog loads every file-backed schema source of the namespace from
// dir and registers all documented type definitions found at the top level.
func BuildCatalog(dir string, ns *Namespace) (*Catalog, error) {
	catalog := NewCatalog()
	for _, source := range ns.Schema {
		if source.Source == "" {
			continue
		}

		file, err := LoadSourceFile(filepath.Join(dir, source.Source))
		if err != nil {
			return nil, err
		}

		for _, group := range file.Groups {
			if group.TypeDef == "" {
				continue
			}

			if err := catalog.Register(group, source.Source); err != nil {
				return nil, err
			}
		}

		for _, dataset := range file.Datasets {
			if dataset.TypeDef == "" {
				continue
			}

			if err := catalog.Register(dataset, source.Source); err != nil {
				return nil, err
			}
		}
	}

	return catalog, nil
}
