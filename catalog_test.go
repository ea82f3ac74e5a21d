// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/rstdoc

package rstdoc

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

const testNamespaceYAML = `namespaces:
- name: core
  full_name: Core Data Format
  doc: Data format for storing recordings.
  version: 2.0.0
  author:
  - Jane Doe
  contact:
  - jane@example.org
  schema:
  - source: core.base.yaml
    title: Base Types
    doc: Foundational building blocks.
  - source: core.device.yaml
`

const testBaseSourceYAML = `groups:
- data_type_def: Container
  doc: Base container type.
- data_type_def: TimeSeries
  data_type_inc: Container
  doc: General time series.
  datasets:
  - name: data
    doc: Recorded values.
    dtype: float32
datasets:
- data_type_def: VectorData
  doc: A one-dimensional vector.
  dtype: text
`

const testDeviceSourceYAML = `groups:
- data_type_def: Device
  data_type_inc: Container
  doc: A recording device.
`

// writeSpecFixture writes a namespace file plus its source files into a
// temp dir and returns the namespace file path.
func writeSpecFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	files := map[string]string{
		"core.namespace.yaml": testNamespaceYAML,
		"core.base.yaml":      testBaseSourceYAML,
		"core.device.yaml":    testDeviceSourceYAML,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}

	return filepath.Join(dir, "core.namespace.yaml")
}

func TestRegisterRejectsUnnamedAndDuplicateTypes(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	err := catalog.Register(&GroupSpec{Doc: "no def"}, "a.yaml")
	assert.ErrorIs(t, err, ErrUnnamedType)

	assert.NilError(t, catalog.Register(&GroupSpec{TypeDef: "Container"}, "a.yaml"))
	err = catalog.Register(&DatasetSpec{TypeDef: "Container"}, "b.yaml")
	assert.ErrorIs(t, err, ErrDuplicateType)
}

func TestCatalogPreservesRegistrationOrder(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	assert.NilError(t, catalog.Register(&GroupSpec{TypeDef: "Zulu"}, "a.yaml"))
	assert.NilError(t, catalog.Register(&GroupSpec{TypeDef: "Alpha"}, "a.yaml"))

	assert.DeepEqual(t, catalog.Types(), []string{"Zulu", "Alpha"})
	assert.Equal(t, catalog.Len(), 2)
	assert.Equal(t, catalog.Source("Alpha"), "a.yaml")

	_, ok := catalog.Spec("Alpha")
	assert.Assert(t, ok)
	_, ok = catalog.Spec("Missing")
	assert.Assert(t, !ok)
}

func TestHierarchyBuildsExtensionTree(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	assert.NilError(t, catalog.Register(&GroupSpec{TypeDef: "Container"}, "a.yaml"))
	assert.NilError(t, catalog.Register(&GroupSpec{TypeDef: "TimeSeries", TypeInc: "Container"}, "a.yaml"))
	assert.NilError(t, catalog.Register(&GroupSpec{TypeDef: "ElectricalSeries", TypeInc: "TimeSeries"}, "a.yaml"))
	assert.NilError(t, catalog.Register(&GroupSpec{TypeDef: "Orphan", TypeInc: "Unregistered"}, "a.yaml"))

	roots := catalog.Hierarchy()
	assert.Equal(t, len(roots), 2)
	assert.Equal(t, roots[0].Name, "Container")
	assert.Equal(t, roots[1].Name, "Orphan")
	assert.Equal(t, len(roots[0].Subtypes), 1)
	assert.Equal(t, roots[0].Subtypes[0].Name, "TimeSeries")
	assert.Equal(t, roots[0].Subtypes[0].Subtypes[0].Name, "ElectricalSeries")
}

func TestLoadNamespaces(t *testing.T) {
	t.Parallel()

	namespaces, err := LoadNamespaces(writeSpecFixture(t))
	assert.NilError(t, err)
	assert.Equal(t, len(namespaces), 1)
	assert.Equal(t, namespaces[0].Name, "core")
	assert.Equal(t, namespaces[0].FullName, "Core Data Format")
	assert.Equal(t, len(namespaces[0].Schema), 2)
}

func TestLoadNamespacesErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadNamespaces(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadSpecFile)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	assert.NilError(t, os.WriteFile(empty, []byte("namespaces: []"), 0o600))
	_, err = LoadNamespaces(empty)
	assert.ErrorIs(t, err, ErrDecodeSpec)
}

func TestBuildCatalogRegistersTopLevelTypes(t *testing.T) {
	t.Parallel()

	path := writeSpecFixture(t)
	namespaces, err := LoadNamespaces(path)
	assert.NilError(t, err)

	catalog, err := BuildCatalog(filepath.Dir(path), namespaces[0])
	assert.NilError(t, err)
	assert.DeepEqual(t, catalog.Types(),
		[]string{"Container", "TimeSeries", "VectorData", "Device"})
	assert.Equal(t, catalog.Source("Device"), "core.device.yaml")
}

func TestSectionsSortTypesBySourceFile(t *testing.T) {
	t.Parallel()

	path := writeSpecFixture(t)
	namespaces, err := LoadNamespaces(path)
	assert.NilError(t, err)

	catalog, err := BuildCatalog(filepath.Dir(path), namespaces[0])
	assert.NilError(t, err)

	sections := catalog.Sections(namespaces[0])
	assert.Equal(t, len(sections), 2)
	assert.Equal(t, sections[0].Title, "Base Types")
	assert.Equal(t, sections[0].Intro, "Foundational building blocks.")
	assert.DeepEqual(t, sections[0].DataTypes,
		[]string{"Container", "TimeSeries", "VectorData"})
	assert.Equal(t, sections[1].Title, "core.device.yaml")
	assert.DeepEqual(t, sections[1].DataTypes, []string{"Device"})
}
