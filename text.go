// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"strings"
	"unicode/utf8"
)

// defaultWrapWidth wraps plain paragraphs at this width when callers pass
// a non-positive width.
const defaultWrapWidth = 80

// CleanOptions configures schema doc-string cleanup.
type CleanOptions struct {
	// Prefix is inserted before qualifier headings, usually newlines to
	// separate them from surrounding text. Default is one space.
	Prefix string
	// Postfix is appended after the cleaned text.
	Postfix string
	// Format is the inline markup wrapped around qualifier headings.
	// Default is "**" for bold text.
	Format string
	// KeepHTML skips replacement of html tags carried over from the schema.
	KeepHTML bool
}

// CleanDocString normalizes a schema doc string for RST display: html
// markup from the source schema becomes RST inline markup, and the
// COMMENT:/NOTE:/MORE_INFO: qualifiers become emphasized headings.
func CleanDocString(doc string, opt CleanOptions) string {
	prefix := opt.Prefix
	if prefix == "" {
		prefix = " "
	}

	format := opt.Format
	if format == "" {
		format = "**"
	}

	out := doc
	if !opt.KeepHTML {
		replacer := strings.NewReplacer(
			"&lt;", "<",
			"&gt;", ">",
			"<b>", " "+format,
			"</b>", format+" ",
			"<i>", " *",
			"</i>", "* ",
			":blue:", "",
		)
		out = replacer.Replace(out)
	}

	out = strings.ReplaceAll(out, "COMMENT:", prefix+format+"Comment:"+format+" ")
	out = strings.ReplaceAll(out, "MORE_INFO:", prefix+format+"Additional Information:"+format+" ")
	out = strings.ReplaceAll(out, "NOTE:", prefix+" "+format+"Additional Information:"+format+" ")

	return out + opt.Postfix
}

// WrapText reflows plain text paragraphs to the given rune width while
// keeping blank-line paragraph breaks. Lines that carry RST structure
// (directives, lists, literal blocks) pass through unchanged.
func WrapText(text string, width int) string {
	if width <= 0 {
		width = defaultWrapWidth
	}

	text = normalizeLineEndings(text)
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	paragraph := make([]string, 0, 4)

	flush := func() {
		if len(paragraph) == 0 {
			return
		}

		out = append(out, wrapParagraph(strings.Join(paragraph, " "), width)...)
		paragraph = paragraph[:0]
	}

	for _, raw := range lines {
		line := strings.TrimRight(raw, " \t")
		trimmed := strings.TrimSpace(line)

		if trimmed == "" {
			flush()
			if len(out) > 0 && out[len(out)-1] != "" {
				out = append(out, "")
			}

			continue
		}

		if isStructuredLine(line) {
			flush()
			out = append(out, line)
			continue
		}

		paragraph = append(paragraph, trimmed)
	}

	flush()
	return strings.Join(out, "\n")
}

// isStructuredLine reports whether a line must bypass paragraph wrapping.
func isStructuredLine(line string) bool {
	if strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t") {
		return true
	}

	trimmed := strings.TrimSpace(line)
	for _, prefix := range []string{"..", "* ", "- ", "+ ", "|", ">>>"} {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	return false
}

// wrapParagraph wraps one plain paragraph to max rune width.
func wrapParagraph(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	out := make([]string, 0, 2)
	current := words[0]
	currentLen := utf8.RuneCountInString(current)

	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
			continue
		}

		out = append(out, current)
		current = word
		currentLen = wordLen
	}

	out = append(out, current)
	return out
}

// normalizeLineEndings converts CRLF/CR to LF.
func normalizeLineEndings(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// ensureTrailingNewline guarantees exactly one trailing newline.
func ensureTrailingNewline(text string) string {
	return strings.TrimRight(text, "\n") + "\n"
}
