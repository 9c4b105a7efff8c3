// Package memory provides an in-memory batch substrate and dataset store,
// used for testing pipelines and for running them locally. Stage descriptors
// are executed against map and reduce record functions registered by name.
package memory
