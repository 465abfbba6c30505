// Package internalcheck holds source-level checks over the spout-go module.
//
// The checks load packages with golang.org/x/tools/go/packages and inspect
// their imports and syntax. They exist only as tests; the package has no API
// and must not be imported.
package internalcheck
