// Package kernel provides core domain primitives shared by the shop domain model.
//
// The package includes:
//   - UUID: a value object for entity identifiers with validation and comparison
//
// These primitives are immutable and thread-safe. The zero value of each type
// is deliberately invalid; instances must be created through the provided
// factory functions so that domain objects are always in a valid state.
package kernel
