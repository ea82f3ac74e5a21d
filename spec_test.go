// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
	"gotest.tools/v3/assert"
)

func TestQuantityUnmarshalAcceptsSymbolsAndIntegers(t *testing.T) {
	t.Parallel()

	var spec DatasetSpec
	err := yaml.Unmarshal([]byte("doc: d\nquantity: '*'"), &spec)
	assert.NilError(t, err)
	assert.Equal(t, spec.Quantity, Quantity("*"))

	spec = DatasetSpec{}
	err = yaml.Unmarshal([]byte("doc: d\nquantity: 2"), &spec)
	assert.NilError(t, err)
	assert.Equal(t, spec.Quantity, Quantity("2"))
}

func TestStringListUnmarshalScalarAndSequence(t *testing.T) {
	t.Parallel()

	var ns Namespace
	err := yaml.Unmarshal([]byte("name: core\nauthor: Jane Doe"), &ns)
	assert.NilError(t, err)
	assert.DeepEqual(t, ns.Authors, StringList{"Jane Doe"})

	ns = Namespace{}
	err = yaml.Unmarshal([]byte("name: core\nauthor:\n- Jane Doe\n- John Roe"), &ns)
	assert.NilError(t, err)
	assert.DeepEqual(t, ns.Authors, StringList{"Jane Doe", "John Roe"})
}

func TestDtypeUnmarshalScalar(t *testing.T) {
	t.Parallel()

	var dtype Dtype
	err := yaml.Unmarshal([]byte("float32"), &dtype)
	assert.NilError(t, err)
	assert.Equal(t, dtype.Primitive, "float32")
	assert.Assert(t, !dtype.IsZero())
}

func TestDtypeUnmarshalCompound(t *testing.T) {
	t.Parallel()

	source := `
- name: start
  doc: Start index.
  dtype: int32
- name: count
  doc: Element count.
  dtype: int32
`

	var dtype Dtype
	err := yaml.Unmarshal([]byte(source), &dtype)
	assert.NilError(t, err)
	assert.Equal(t, len(dtype.Compound), 2)
	assert.Equal(t, dtype.Compound[0].Name, "start")
	assert.Equal(t, dtype.Compound[1].Dtype.Primitive, "int32")
}

func TestDtypeUnmarshalReference(t *testing.T) {
	t.Parallel()

	var dtype Dtype
	err := yaml.Unmarshal([]byte("target_type: ElectrodeGroup\nreftype: object"), &dtype)
	assert.NilError(t, err)
	assert.Assert(t, dtype.Ref != nil)
	assert.Equal(t, dtype.Ref.TargetType, "ElectrodeGroup")
	assert.Equal(t, dtype.Ref.RefType, "object")
}

func TestDtypeMarshalRestoresCompactForms(t *testing.T) {
	t.Parallel()

	scalar, err := yaml.Marshal(Dtype{Primitive: "text"})
	assert.NilError(t, err)
	assert.Equal(t, strings.TrimSpace(string(scalar)), "text")

	ref, err := yaml.Marshal(Dtype{Ref: &RefSpec{TargetType: "Device", RefType: "object"}})
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(ref), "target_type: Device"))
	assert.Assert(t, strings.Contains(string(ref), "reftype: object"))
}

func TestDtypeOmittedWhenZero(t *testing.T) {
	t.Parallel()

	data, err := yaml.Marshal(&AttributeSpec{Name: "unit", Doc: "Unit of measure."})
	assert.NilError(t, err)
	assert.Assert(t, !strings.Contains(string(data), "dtype"))
}

func TestShapeValueString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ShapeValue{nil, 3}.String(), "[null, 3]")
	assert.Equal(t,
		ShapeValue{[]any{nil}, []any{nil, 3}}.String(),
		"[[null], [null, 3]]")
}

func TestShapeValueUnmarshal(t *testing.T) {
	t.Parallel()

	var spec DatasetSpec
	err := yaml.Unmarshal([]byte("doc: d\nshape:\n- null\n- 3"), &spec)
	assert.NilError(t, err)
	assert.Equal(t, spec.Shape.String(), "[null, 3]")
}

func TestGroupSpecDecodeNestedMembers(t *testing.T) {
	t.Parallel()

	source := `
data_type_def: TimeSeries
doc: General time series.
attributes:
- name: comments
  doc: Human readable comments.
  dtype: text
datasets:
- name: data
  doc: Recorded values.
  dtype: float32
links:
- target_type: Device
  doc: Recording device.
  quantity: '?'
groups:
- name: sync
  doc: Synchronization info.
`

	var group GroupSpec
	err := yaml.Unmarshal([]byte(source), &group)
	assert.NilError(t, err)
	assert.Equal(t, group.Kind(), KindGroup)
	assert.Equal(t, group.TypeDef, "TimeSeries")
	assert.Equal(t, len(group.Attributes), 1)
	assert.Equal(t, len(group.Datasets), 1)
	assert.Equal(t, len(group.Links), 1)
	assert.Equal(t, len(group.Groups), 1)
	assert.Equal(t, group.Links[0].Quantity, Quantity("?"))
	assert.Equal(t, group.Datasets[0].Dtype.Primitive, "float32")
}
