// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import "errors"

var (
	// ErrReadSpecFile is returned when a namespace or source file cannot be read.
	ErrReadSpecFile = errors.New("read spec file")
	// ErrDecodeSpec is returned when spec YAML decoding fails.
	ErrDecodeSpec = errors.New("decode spec")
	// ErrUnnamedType is returned when registering a node without a type definition.
	ErrUnnamedType = errors.New("spec node has no type definition")
	// ErrDuplicateType is returned when a type name is registered twice.
	ErrDuplicateType = errors.New("duplicate type")
	// ErrGroupName is returned when the display name of a group cannot be determined.
	ErrGroupName = errors.New("cannot determine group name")
	// ErrUnknownAdmonition is returned for admonition kinds outside the RST set.
	ErrUnknownAdmonition = errors.New("unknown admonition kind")
	// ErrInvalidFigureAlign is returned for figure align values outside the RST set.
	ErrInvalidFigureAlign = errors.New("invalid figure align")
	// ErrTableIndex is returned on out-of-bounds table cell access.
	ErrTableIndex = errors.New("table index out of bounds")
	// ErrEncodeYAMLSource is returned when a spec cannot be marshalled into a YAML source block.
	ErrEncodeYAMLSource = errors.New("encode yaml source")
	// ErrWriteDocument is returned when a rendered document cannot be written.
	ErrWriteDocument = errors.New("write document")
	// ErrParseBuiltinTemplate is returned when a built-in page template fails to parse.
	ErrParseBuiltinTemplate = errors.New("parse built-in template")
	// ErrExecuteTemplate is returned when page template execution fails.
	ErrExecuteTemplate = errors.New("execute template")
	// ErrUnknownBuiltinTemplate is returned when a built-in page template name is not registered.
	ErrUnknownBuiltinTemplate = errors.New("unknown built-in template")
	// ErrCreateOutputDir is returned when the output directory cannot be created.
	ErrCreateOutputDir = errors.New("create output directory")
)
