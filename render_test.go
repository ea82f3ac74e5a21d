// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestQuantityText(t *testing.T) {
	t.Parallel()

	cases := []struct {
		quantity Quantity
		want     string
	}{
		{"*", "0 or more"},
		{"zero_or_more", "0 or more"},
		{"+", "1 or more"},
		{"one_or_more", "1 or more"},
		{"?", "0 or 1"},
		{"zero_or_one", "0 or 1"},
		{"2", "2"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(string(tc.quantity), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, QuantityText(tc.quantity), tc.want)
		})
	}
}

func TestDtypeTextPrimitive(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DtypeText(Dtype{Primitive: "float32"}), "float32")
	assert.Equal(t, DtypeText(Dtype{}), "")
}

func TestDtypeTextReference(t *testing.T) {
	t.Parallel()

	got := DtypeText(Dtype{Ref: &RefSpec{TargetType: "Device", RefType: "object"}})
	assert.Equal(t, got, "object reference to :ref:`Device <sec-Device>`")
}

func TestDtypeTextCompound(t *testing.T) {
	t.Parallel()

	got := DtypeText(Dtype{Compound: []CompoundElem{
		{Name: "start", Doc: "Start index.", Dtype: Dtype{Primitive: "int32"}},
	}})

	assert.Assert(t, strings.HasPrefix(got, "Compound data type with the following elements: \n"))
	assert.Assert(t, strings.Contains(got, "    * **start:** Start index. (*dtype=* int32 ) \n"))
}

func TestSpecPropertiesLink(t *testing.T) {
	t.Parallel()

	got := SpecProperties(&LinkSpec{TargetType: "Device", Quantity: "?"}, PropertyOptions{})
	assert.Assert(t, strings.Contains(got, "- **Target Type** :ref:`Device <sec-Device>`"))
	assert.Assert(t, strings.Contains(got, "- **Quantity:** 0 or 1"))
}

func TestSpecPropertiesDataset(t *testing.T) {
	t.Parallel()

	linkable := true
	got := SpecProperties(&DatasetSpec{
		Name:     "data",
		TypeInc:  "VectorData",
		Quantity: "+",
		Dtype:    Dtype{Primitive: "float32"},
		Dims:     ShapeValue{"num_times"},
		Shape:    ShapeValue{nil},
		Linkable: &linkable,
	}, PropertyOptions{})

	assert.Assert(t, strings.Contains(got, "- **Extends:** :ref:`VectorData <sec-VectorData>`"))
	assert.Assert(t, strings.Contains(got, "- **Primitive Type:** Dataset"))
	assert.Assert(t, strings.Contains(got, "- **Quantity:** 1 or more"))
	assert.Assert(t, strings.Contains(got, "- **Data Type:** float32"))
	assert.Assert(t, strings.Contains(got, "- **Dimensions:** [num_times]"))
	assert.Assert(t, strings.Contains(got, "- **Shape:** [null]"))
	assert.Assert(t, strings.Contains(got, "- **Linkable:** True"))
	assert.Assert(t, strings.Contains(got, "- **Name:** data"))
}

func TestSpecPropertiesGroupDocumentedTypeIsReference(t *testing.T) {
	t.Parallel()

	got := SpecProperties(&GroupSpec{TypeDef: "TimeSeries", DefaultName: "series"}, PropertyOptions{})
	assert.Assert(t, strings.Contains(got, "- **Documented Type:** :ref:`TimeSeries <sec-TimeSeries>`"))
	assert.Assert(t, strings.Contains(got, "- **Default Name:** series"))
}

func TestSpecPropertiesAttribute(t *testing.T) {
	t.Parallel()

	required := false
	got := SpecProperties(&AttributeSpec{
		Name:         "unit",
		Dtype:        Dtype{Primitive: "text"},
		Required:     &required,
		DefaultValue: "seconds",
	}, PropertyOptions{})

	assert.Assert(t, strings.Contains(got, "- **Primitive Type:** Attribute"))
	assert.Assert(t, strings.Contains(got, "- **Required:** False"))
	assert.Assert(t, strings.Contains(got, "- **Default Value:** seconds"))
}

func TestSpecPropertiesIgnoreAndExtras(t *testing.T) {
	t.Parallel()

	got := SpecProperties(&AttributeSpec{Name: "unit"}, PropertyOptions{
		Ignore:  []string{PropPrimitiveType},
		Prepend: []string{"**First:** x"},
		Append:  []string{"**Last:** y"},
	})

	assert.Assert(t, !strings.Contains(got, "Primitive Type"))
	before := strings.Index(got, "**First:** x")
	after := strings.Index(got, "**Last:** y")
	assert.Assert(t, before >= 0 && after > before)
}

func TestSpecPropertiesEmpty(t *testing.T) {
	t.Parallel()

	got := SpecProperties(&LinkSpec{TargetType: "Device"}, PropertyOptions{
		Ignore: []string{PropQuantity},
	})
	assert.Assert(t, strings.Contains(got, "Target Type"))

	got = SpecProperties(&AttributeSpec{}, PropertyOptions{
		Ignore: []string{PropPrimitiveType},
	})
	assert.Equal(t, got, "")
}

func TestSpecTableAbbreviatesTopRow(t *testing.T) {
	t.Parallel()

	group := &GroupSpec{
		Name: "acquisition",
		Doc:  "Acquired data.",
		Datasets: []*DatasetSpec{
			{Name: "data", Doc: "Recorded values."},
		},
	}

	doc := NewDocument()
	SpecTable(group, SpecTableOptions{}).Render(doc, TableOptions{})

	got := doc.String()
	assert.Assert(t, strings.Contains(got, "Top level Group for acquisition"))
	assert.Assert(t, !strings.Contains(got, "Acquired data."))
	assert.Assert(t, strings.Contains(got, "Recorded values."))
}

func TestSpecTableFullTopDoc(t *testing.T) {
	t.Parallel()

	group := &GroupSpec{Name: "acquisition", Doc: "Acquired data."}
	doc := NewDocument()
	SpecTable(group, SpecTableOptions{FullTopDoc: true}).Render(doc, TableOptions{RenderEmpty: true})

	assert.Assert(t, strings.Contains(doc.String(), "Acquired data."))
}

func TestSpecTableDepthMarkers(t *testing.T) {
	t.Parallel()

	group := &GroupSpec{
		Name: "top",
		Groups: []*GroupSpec{
			{Name: "sub", Datasets: []*DatasetSpec{{Name: "deep", Doc: "d"}}},
		},
	}

	table := SpecTable(group, SpecTableOptions{
		ShowSubgroups:      true,
		RecursiveSubgroups: true,
	})

	doc := NewDocument()
	table.Render(doc, TableOptions{})
	got := doc.String()
	assert.Assert(t, strings.Contains(got, "| .sub "))
	assert.Assert(t, strings.Contains(got, "| ..deep "))
}

func TestSpecTableNonRecursiveSubgroupsHideMembers(t *testing.T) {
	t.Parallel()

	group := &GroupSpec{
		Name: "top",
		Groups: []*GroupSpec{
			{Name: "sub", Datasets: []*DatasetSpec{{Name: "hidden", Doc: "d"}}},
		},
	}

	table := SpecTable(group, SpecTableOptions{ShowSubgroups: true})
	doc := NewDocument()
	table.Render(doc, TableOptions{})
	got := doc.String()
	assert.Assert(t, strings.Contains(got, ".sub"))
	assert.Assert(t, !strings.Contains(got, "hidden"))
}

func TestSpecTableHideFlags(t *testing.T) {
	t.Parallel()

	group := &GroupSpec{
		Name:       "top",
		Attributes: []*AttributeSpec{{Name: "attr", Doc: "a"}},
		Datasets:   []*DatasetSpec{{Name: "ds", Doc: "d"}},
		Links:      []*LinkSpec{{TargetType: "Device", Doc: "l"}},
	}

	table := SpecTable(group, SpecTableOptions{
		HideAttributes: true,
		HideDatasets:   true,
	})
	assert.Equal(t, table.NumRows(), 2)

	table = SpecTable(group, SpecTableOptions{HideLinks: true})
	assert.Equal(t, table.NumRows(), 3)
}

func TestSpecTableNameFallbacks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		spec Spec
		want string
	}{
		{"explicit", &DatasetSpec{Name: "data"}, "data"},
		{"typedef", &GroupSpec{TypeDef: "TimeSeries"}, "<TimeSeries>"},
		{"typeinc", &GroupSpec{TypeInc: "Container"},
			"<:ref:`Container <sec-Container>`>"},
		{"link", &LinkSpec{TargetType: "Device"},
			"<:ref:`Device <sec-Device>`>"},
		{"unnamed", &AttributeSpec{}, "<unnamed>"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, specTableName(tc.spec), tc.want)
		})
	}
}
