// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/rs/zerolog"
)

const (
	// typesDirName holds per-type include fragments inside the output dir.
	typesDirName = "types"
	// masterFileName is the generated toctree master page.
	masterFileName = "index.rst"
	// creditsFileName is the generated credits page.
	creditsFileName = "credits.rst"
)

// BuildOptions configures namespace documentation assembly.
type BuildOptions struct {
	// OutputDir receives all generated files.
	OutputDir string
	// Title overrides the master page title; defaults to the namespace
	// full name or name.
	Title string
	// FilePerType writes one include fragment per documented type instead
	// of inlining the sections into the main documents.
	FilePerType bool
	// SeparateSource renders YAML sources into a dedicated document that
	// cross-links with the description document.
	SeparateSource bool
	// HideSource skips YAML source rendering entirely.
	HideSource bool
	// HideTableTitles suppresses spec table captions.
	HideTableTitles bool
	// WrapWidth reflows section intro text; non-positive selects the
	// default width.
	WrapWidth int
	// Logger receives per-file build status; zerolog.Nop() by default.
	Logger zerolog.Logger
}

// Builder assembles the RST documentation tree for one namespace.
type Builder struct {
	ns      *Namespace
	catalog *Catalog
	opt     BuildOptions
	log     zerolog.Logger
	written []string
}

// NewBuilder returns a builder for the given namespace and catalog.
func NewBuilder(ns *Namespace, catalog *Catalog, opt BuildOptions) *Builder {
	return &Builder{
		ns:      ns,
		catalog: catalog,
		opt:     opt,
		log:     opt.Logger,
	}
}

// WrittenFiles returns the paths of all files written by the last Build.
func (b *Builder) WrittenFiles() []string {
	out := make([]string, len(b.written))
	copy(out, b.written)
	return out
}

// Build renders and writes the full documentation tree: the type
// hierarchy fragment, the format description document, the optional
// source document, per-type fragments when configured, and the master
// index and credits pages.
func (b *Builder) Build() error {
	b.written = b.written[:0]
	if err := os.MkdirAll(b.opt.OutputDir, 0o750); err != nil {
		return fmt.Errorf("%w %q: %w", ErrCreateOutputDir, b.opt.OutputDir, err)
	}

	if b.opt.FilePerType {
		typesDir := filepath.Join(b.opt.OutputDir, typesDirName)
		if err := os.MkdirAll(typesDir, 0o750); err != nil {
			return fmt.Errorf("%w %q: %w", ErrCreateOutputDir, typesDir, err)
		}
	}

	hierarchyFile, err := b.buildHierarchy()
	if err != nil {
		return err
	}

	descDoc := NewDocument()
	srcDoc := descDoc
	if b.separateSource() {
		srcDoc = NewDocument()
	}

	nsOpt := NamespaceRenderOptions{
		HideSource:            b.opt.HideSource,
		HierarchyIncludeHTML:  hierarchyFile,
		HierarchyIncludeLatex: hierarchyFile,
	}
	if err := RenderNamespace(descDoc, srcDoc, b.ns, nsOpt); err != nil {
		return err
	}

	if err := b.buildSections(descDoc, srcDoc); err != nil {
		return err
	}

	pages := []string{b.descFileName()}
	if err := b.writeDoc(descDoc, b.descFileName()); err != nil {
		return err
	}

	if b.separateSource() {
		pages = append(pages, b.srcFileName())
		if err := b.writeDoc(srcDoc, b.srcFileName()); err != nil {
			return err
		}
	}

	return b.buildMasterPages(pages)
}

// buildHierarchy writes the type hierarchy include fragment and returns
// its file name relative to the output dir.
func (b *Builder) buildHierarchy() (string, error) {
	doc := NewDocument()
	RenderHierarchy(doc, b.catalog, HierarchyLabel, "Type Hierarchy")

	name := b.ns.Name + "_type_hierarchy.inc"
	if err := b.writeDoc(doc, name); err != nil {
		return "", err
	}

	return name, nil
}

// buildSections renders one document section per namespace source file
// with the descriptions and sources of all types defined there.
func (b *Builder) buildSections(descDoc, srcDoc *Document) error {
	for _, section := range b.catalog.Sections(b.ns) {
		descDoc.AddSection(section.Title)
		if section.Intro != "" {
			descDoc.AddText(WrapText(section.Intro, b.opt.WrapWidth) + Newline + Newline)
		}

		if b.separateSource() {
			srcDoc.AddSection(section.Title)
		}

		for _, typeName := range section.DataTypes {
			if err := b.buildType(descDoc, srcDoc, typeName); err != nil {
				return err
			}
		}
	}

	return nil
}

// separateSource reports whether sources render into their own document.
func (b *Builder) separateSource() bool {
	return b.opt.SeparateSource && !b.opt.HideSource
}

// buildType renders the description and source sections of one type,
// either inline or as included per-type fragments.
func (b *Builder) buildType(descDoc, srcDoc *Document, typeName string) error {
	spec, ok := b.catalog.Spec(typeName)
	if !ok {
		return fmt.Errorf("%w: type %q not registered", ErrUnnamedType, typeName)
	}

	descTarget := descDoc
	srcTarget := srcDoc
	if b.opt.FilePerType {
		descTarget = NewDocument()
		srcTarget = descTarget
		if b.separateSource() {
			srcTarget = NewDocument()
		}
	}

	if err := b.renderTypeDescription(descTarget, typeName, spec); err != nil {
		return err
	}

	if !b.opt.HideSource {
		if err := b.renderTypeSource(srcTarget, typeName, spec); err != nil {
			return err
		}
	}

	if !b.opt.FilePerType {
		return nil
	}

	descName := path.Join(typesDirName, typeName+".inc")
	if err := b.writeDoc(descTarget, descName); err != nil {
		return err
	}

	descDoc.AddInclude(descName, "")
	if b.separateSource() {
		srcName := path.Join(typesDirName, typeName+"_src.inc")
		if err := b.writeDoc(srcTarget, srcName); err != nil {
			return err
		}

		srcDoc.AddInclude(srcName, "")
	}

	return nil
}

// renderTypeDescription renders the labeled description section of one
// documented type.
func (b *Builder) renderTypeDescription(doc *Document, typeName string, spec Spec) error {
	doc.AddLatexClearpage()
	doc.AddLabel(TypeLabel(typeName))
	doc.AddSubsection(typeName)

	extra := []string{"**Source file:** " + b.catalog.Source(typeName)}
	if label := TypeSourceLabel(typeName, b.separateSource(), !b.opt.HideSource); label != "" && b.separateSource() {
		extra = append(extra, "**Source Specification:** see "+NumberedReference(label))
	}

	text := CleanDocString(specDoc(spec), CleanOptions{
		Prefix:  Newline + Newline,
		Postfix: Newline,
	})
	text += SpecProperties(spec, PropertyOptions{
		Ignore: []string{PropPrimitiveType},
		Append: extra,
	})
	text += Newline
	doc.AddText(text)

	if group, ok := spec.(*GroupSpec); ok {
		return RenderGroup(doc, group, GroupRenderOptions{
			HideTableTitles: b.opt.HideTableTitles,
		})
	}

	table := SpecTable(spec, SpecTableOptions{})
	if table.NumRows() > 1 {
		title := ""
		if !b.opt.HideTableTitles {
			title = fmt.Sprintf("Datasets, Links, and Attributes contained in ``%s``", typeName)
		}

		doc.AddTable(table, TableOptions{
			Title:        title,
			Label:        DataTableLabel(typeName),
			LatexColumns: LatexSpecTableColumns,
		})
	}

	return nil
}

// renderTypeSource renders the YAML source section of one type. With a
// separate source document the section gets its own label and heading;
// inline sources attach to the description section rendered just before.
func (b *Builder) renderTypeSource(doc *Document, typeName string, spec Spec) error {
	if b.separateSource() {
		doc.AddLabel(TypeSourceLabel(typeName, true, true))
		doc.AddSubsection(typeName)
		doc.AddText("**Description:** see " +
			NumberedReference(TypeLabel(typeName)) + Newline + Newline)
	}

	doc.AddText("**YAML Specification:**" + Newline + Newline)
	return doc.AddYAML(spec)
}

// buildMasterPages writes the index and credits pages from the built-in
// templates.
func (b *Builder) buildMasterPages(pages []string) error {
	title := b.opt.Title
	if title == "" {
		title = b.ns.FullName
	}

	if title == "" {
		title = b.ns.Name
	}

	toctree := make([]string, 0, len(pages)+1)
	for _, page := range pages {
		toctree = append(toctree, trimRSTExt(page))
	}

	toctree = append(toctree, trimRSTExt(creditsFileName))

	view := pageView{
		Title:       title,
		Namespace:   b.ns.Name,
		Version:     b.ns.Version,
		Description: b.ns.Doc,
		Pages:       toctree,
		Authors:     b.ns.Authors,
		Contacts:    b.ns.Contacts,
	}

	index, err := renderPage(templateIndexName, view)
	if err != nil {
		return err
	}

	if err := b.writeText(index, masterFileName); err != nil {
		return err
	}

	credits, err := renderPage(templateCreditsName, view)
	if err != nil {
		return err
	}

	return b.writeText(credits, creditsFileName)
}

// descFileName returns the description document file name.
func (b *Builder) descFileName() string {
	return b.ns.Name + "_format.rst"
}

// srcFileName returns the source document file name.
func (b *Builder) srcFileName() string {
	return b.ns.Name + "_format_source.rst"
}

// writeDoc writes one rendered document below the output dir.
func (b *Builder) writeDoc(doc *Document, name string) error {
	return b.writeText(doc.String(), name)
}

// writeText writes text content below the output dir and logs the result.
func (b *Builder) writeText(text, name string) error {
	target := filepath.Join(b.opt.OutputDir, name)
	if err := os.WriteFile(target, []byte(ensureTrailingNewline(text)), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteDocument, target, err)
	}

	b.written = append(b.written, target)
	b.log.Info().Str("file", target).Msg("wrote document")
	return nil
}

// trimRSTExt strips the .rst extension for toctree entries.
func trimRSTExt(name string) string {
	const ext = ".rst"
	if len(name) > len(ext) && name[len(name)-len(ext):] == ext {
		return name[:len(name)-len(ext)]
	}

	return name
}
