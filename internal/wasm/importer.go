package wasm

// Importer resolves a module name to a decoded Module for instantiation of
// imports whose Import.Module is not HostModule. An embedder implements
// this (or uses DefaultImporter) to link one module's exports into
// another's imports before calling new_instance.
type Importer interface {
	Import(moduleName string) (*Module, bool)
}

// DefaultImporter is a simple in-memory Importer backed by a name-to-Module
// map, adequate for tests and for embedders that register every module up
// front rather than resolving them lazily.
type DefaultImporter struct {
	modules map[string]*Module
}

// NewDefaultImporter returns an empty DefaultImporter.
func NewDefaultImporter() *DefaultImporter {
	return &DefaultImporter{modules: make(map[string]*Module)}
}

// AddModule registers m so it can be resolved as an import under name.
func (d *DefaultImporter) AddModule(m *Module, name string) {
	d.modules[name] = m
}

// Import implements Importer.
func (d *DefaultImporter) Import(name string) (*Module, bool) {
	m, ok := d.modules[name]
	return m, ok
}
