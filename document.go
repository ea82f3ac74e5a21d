// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	// Newline is the fixed line terminator for all generated output.
	Newline = "\n"
	// DefaultIndent is the indent prefix used for directive bodies.
	DefaultIndent = "    "
)

const (
	// LevelParagraph renders an underlined `"` heading. It is the zero
	// value and the default level for nested spec rendering.
	LevelParagraph HeadingLevel = iota
	// LevelSubsubsection renders an underlined "^" heading.
	LevelSubsubsection
	// LevelSubsection renders an underlined "-" heading.
	LevelSubsection
	// LevelSection renders an underlined "=" heading.
	LevelSection
	// LevelChapter renders an overlined "*" heading.
	LevelChapter
	// LevelPart renders an overlined "#" heading.
	LevelPart
)

// HeadingLevel selects the adornment style for document headings, ordered
// from least to most prominent.
type HeadingLevel int

// admonitionKinds enumerates directive names accepted by AddAdmonition.
var admonitionKinds = map[string]struct{}{
	"attention": {},
	"caution":   {},
	"danger":    {},
	"error":     {},
	"hint":      {},
	"important": {},
	"note":      {},
	"tip":       {},
	"warning":   {},
}

// figureAligns enumerates alignment values accepted by AddFigure.
var figureAligns = map[string]struct{}{
	"top":    {},
	"middle": {},
	"bottom": {},
	"left":   {},
	"center": {},
	"right":  {},
}

// Document is an append-only buffer accumulating reStructuredText markup.
type Document struct {
	buf strings.Builder
}

// ListItem is one entry of a possibly nested bullet list. An item with an
// empty Text renders only its children one indent level deeper.
type ListItem struct {
	Text  string
	Items []ListItem
}

// CodeOptions configures code-block directive rendering.
type CodeOptions struct {
	// Language selects source highlighting; empty means "text".
	Language string
	// LineNumbers emits the :linenos: option.
	LineNumbers bool
	// EmphasizeLines lists 1-based line numbers for :emphasize-lines:.
	EmphasizeLines []int
}

// Figure describes one figure directive.
type Figure struct {
	// Image is the path to the image file.
	Image string
	// Caption is optional caption text rendered below the image.
	Caption string
	// Legend is optional legend text rendered below the caption.
	Legend string
	// Alt is the alternate text for the image.
	Alt string
	// Height is the image height in pixels; zero omits the option.
	Height int
	// Width is the image width in pixels; zero omits the option.
	Width int
	// Scale is uniform scaling in percent; zero omits the option.
	Scale int
	// Align is one of top, middle, bottom, left, center, right.
	Align string
	// Target is an optional hyperlink placed on the image.
	Target string
}

// NewDocument returns an empty RST document buffer.
func NewDocument() *Document {
	return &Document{}
}

// String returns the accumulated document text.
func (d *Document) String() string {
	return d.buf.String()
}

// Len returns the current document size in bytes.
func (d *Document) Len() int {
	return d.buf.Len()
}

// AddText appends raw text to the document.
func (d *Document) AddText(text string) {
	d.buf.WriteString(text)
}

// AddNewline appends one newline to the document.
func (d *Document) AddNewline() {
	d.buf.WriteString(Newline)
}

// headingAdornment returns the adornment character and whether the heading
// carries an overline for the given level. Unknown levels fall back to
// paragraph style.
func headingAdornment(level HeadingLevel) (string, bool) {
	switch level {
	case LevelPart:
		return "#", true
	case LevelChapter:
		return "*", true
	case LevelSection:
		return "=", false
	case LevelSubsection:
		return "-", false
	case LevelSubsubsection:
		return "^", false
	default:
		return `"`, false
	}
}

// AddHeading appends a heading with the adornment style of the given level.
// The adornment line length matches the title length.
func (d *Document) AddHeading(title string, level HeadingLevel) {
	adornment, overline := headingAdornment(level)
	line := strings.Repeat(adornment, utf8.RuneCountInString(title))
	if overline {
		d.buf.WriteString(line + Newline)
	}

	d.buf.WriteString(title + Newline)
	d.buf.WriteString(line + Newline)
	d.buf.WriteString(Newline)
}

// AddPart appends an overlined part heading.
func (d *Document) AddPart(title string) {
	d.AddHeading(title, LevelPart)
}

// AddChapter appends an overlined chapter heading.
func (d *Document) AddChapter(title string) {
	d.AddHeading(title, LevelChapter)
}

// AddSection appends a section heading.
func (d *Document) AddSection(title string) {
	d.AddHeading(title, LevelSection)
}

// AddSubsection appends a subsection heading.
func (d *Document) AddSubsection(title string) {
	d.AddHeading(title, LevelSubsection)
}

// AddSubsubsection appends a subsubsection heading.
func (d *Document) AddSubsubsection(title string) {
	d.AddHeading(title, LevelSubsubsection)
}

// AddParagraphHeading appends a paragraph heading.
func (d *Document) AddParagraphHeading(title string) {
	d.AddHeading(title, LevelParagraph)
}

// AddLabel appends a cross-reference label anchor.
func (d *Document) AddLabel(label string) {
	d.buf.WriteString(".. _" + label + ":")
	d.buf.WriteString(Newline + Newline)
}

// Reference returns inline markup referencing the given label. When title is
// empty the label itself becomes the link text.
func Reference(label, title string) string {
	if title != "" {
		return fmt.Sprintf(":ref:`%s <%s>`", title, label)
	}

	return fmt.Sprintf(":ref:`%s`", label)
}

// NumberedReference returns inline markup for a numbered reference.
func NumberedReference(label string) string {
	return fmt.Sprintf(":numref:`%s`", label)
}

// AddCode appends a code-block directive with the given body.
func (d *Document) AddCode(code string, opt CodeOptions) {
	language := strings.TrimSpace(opt.Language)
	if language == "" {
		language = "text"
	}

	d.buf.WriteString(".. code-block:: " + language + Newline)
	if opt.LineNumbers {
		d.buf.WriteString(Indent(":linenos:", "") + Newline)
	}

	if len(opt.EmphasizeLines) > 0 {
		parts := make([]string, 0, len(opt.EmphasizeLines))
		for _, line := range opt.EmphasizeLines {
			parts = append(parts, strconv.Itoa(line))
		}

		d.buf.WriteString(Indent(":emphasize-lines: "+strings.Join(parts, ","), "") + Newline)
	}

	d.buf.WriteString(Newline)
	d.buf.WriteString(Indent(code, ""))
	d.buf.WriteString(Newline + Newline)
}

// AddYAML marshals the given value and appends it as a yaml code block.
func (d *Document) AddYAML(value any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodeYAMLSource, err)
	}

	d.AddCode(strings.TrimRight(string(data), "\n"), CodeOptions{Language: "yaml"})
	return nil
}

// AddList appends a nested bullet list. Marker defaults to "*" when empty.
func (d *Document) AddList(items []ListItem, marker string) {
	if marker == "" {
		marker = "*"
	}

	d.addListLevel(items, marker, "")
	d.buf.WriteString(Newline)
}

// addListLevel renders one nesting level of a bullet list.
func (d *Document) addListLevel(items []ListItem, marker, indent string) {
	for _, item := range items {
		if item.Text != "" {
			d.buf.WriteString(indent + marker + " " + item.Text + Newline)
		}

		if len(item.Items) > 0 {
			d.addListLevel(item.Items, marker, indent+DefaultIndent)
		}
	}
}

// AddAdmonition appends an admonition directive of the given kind.
func (d *Document) AddAdmonition(kind, text string) error {
	if _, ok := admonitionKinds[kind]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownAdmonition, kind)
	}

	d.buf.WriteString(Newline)
	d.buf.WriteString(".. " + kind + "::" + Newline)
	d.buf.WriteString(Indent(text, ""))
	d.buf.WriteString(Newline + Newline)
	return nil
}

// AddInclude appends an include directive with an optional indent prefix.
func (d *Document) AddInclude(filename, indent string) {
	d.buf.WriteString(indent + ".. include:: " + filename + Newline)
}

// AddFigure appends a figure directive.
func (d *Document) AddFigure(figure Figure) error {
	if figure.Align != "" {
		if _, ok := figureAligns[figure.Align]; !ok {
			return fmt.Errorf("%w %q", ErrInvalidFigureAlign, figure.Align)
		}
	}

	d.buf.WriteString(Newline)
	d.buf.WriteString(".. figure:: " + figure.Image + Newline)
	if figure.Scale > 0 {
		d.buf.WriteString(Indent(":scale: "+strconv.Itoa(figure.Scale)+" %", "") + Newline)
	}

	if figure.Alt != "" {
		d.buf.WriteString(Indent(":alt: "+figure.Alt, "") + Newline)
	}

	if figure.Height > 0 {
		d.buf.WriteString(Indent(":height: "+strconv.Itoa(figure.Height)+" px", "") + Newline)
	}

	if figure.Width > 0 {
		d.buf.WriteString(Indent(":width: "+strconv.Itoa(figure.Width)+" px", "") + Newline)
	}

	if figure.Align != "" {
		d.buf.WriteString(Indent(":align: "+figure.Align, "") + Newline)
	}

	if figure.Target != "" {
		d.buf.WriteString(Indent(":target: "+figure.Target, "") + Newline)
	}

	d.buf.WriteString(Newline)
	if figure.Caption != "" {
		d.buf.WriteString(Indent(figure.Caption, "") + Newline)
	}

	if figure.Legend != "" {
		if figure.Caption == "" {
			// Empty comment keeps the legend block attached to the figure.
			d.buf.WriteString(Indent("..", "") + Newline + DefaultIndent + Newline)
		}

		d.buf.WriteString(Indent(figure.Legend, "") + Newline)
	}

	d.buf.WriteString(Newline)
	return nil
}

// AddSidebar appends a sidebar directive with optional subtitle.
func (d *Document) AddSidebar(text, title, subtitle string) {
	d.buf.WriteString(Newline)
	d.buf.WriteString(".. sidebar:: " + title + Newline)
	if subtitle != "" {
		d.buf.WriteString(Indent(":subtitle: "+subtitle, "") + Newline)
	}

	d.buf.WriteString(Newline)
	d.buf.WriteString(Indent(text, ""))
	d.buf.WriteString(Newline + Newline)
}

// AddTopic appends a topic directive.
func (d *Document) AddTopic(text, title string) {
	d.buf.WriteString(Newline)
	d.buf.WriteString(".. topic:: " + title + Newline)
	d.buf.WriteString(Newline)
	d.buf.WriteString(Indent(text, ""))
	d.buf.WriteString(Newline + Newline)
}

// AddLatexClearpage appends a raw latex block forcing a page break.
func (d *Document) AddLatexClearpage() {
	d.buf.WriteString(Newline)
	d.buf.WriteString(".. raw:: latex" + Newline + Newline)
	d.buf.WriteString(DefaultIndent + `\clearpage \newpage` + Newline + Newline)
}

// AddTable renders the given table into this document.
func (d *Document) AddTable(table *Table, opt TableOptions) {
	table.Render(d, opt)
}

// WriteFile writes the document text to the given path.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(d.buf.String()), 0o600); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteDocument, path, err)
	}

	return nil
}

// Indent prefixes every line of text with the given prefix. An empty prefix
// selects DefaultIndent.
func Indent(text, prefix string) string {
	if prefix == "" {
		prefix = DefaultIndent
	}

	lines := strings.SplitAfter(text, "\n")
	var out strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}

		out.WriteString(prefix + line)
	}

	return out.String()
}
