// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc_test

import (
	"fmt"

	"github.com/woozymasta/rstdoc"
)

func ExampleDocument_AddSection() {
	doc := rstdoc.NewDocument()
	doc.AddSection("Format Overview")
	fmt.Print(doc.String())
	// Output:
	// Format Overview
	// ===============
}

func ExampleReference() {
	fmt.Println(rstdoc.Reference("sec-Device", "Device"))
	fmt.Println(rstdoc.Reference("sec-Device", ""))
	// Output:
	// :ref:`Device <sec-Device>`
	// :ref:`sec-Device`
}

func ExampleQuantityText() {
	fmt.Println(rstdoc.QuantityText("*"))
	fmt.Println(rstdoc.QuantityText("?"))
	fmt.Println(rstdoc.QuantityText("2"))
	// Output:
	// 0 or more
	// 0 or 1
	// 2
}

func ExampleTable_Render() {
	table := rstdoc.NewTable("Id", "Doc")
	table.AddRow("data", "Values.")

	doc := rstdoc.NewDocument()
	table.Render(doc, rstdoc.TableOptions{Class: rstdoc.ClassNone})
	fmt.Print(doc.String())
	// Output:
	// .. table::
	//
	//     +--------+-----------+
	//     | Id     | Doc       |
	//     +========+===========+
	//     | data   | Values.   |
	//     +--------+-----------+
}

func ExampleTypeLabel() {
	fmt.Println(rstdoc.TypeLabel("TimeSeries"))
	fmt.Println(rstdoc.TypeSourceLabel("TimeSeries", true, true))
	// Output:
	// sec-TimeSeries
	// sec-TimeSeries-src
}
