// Package types provides the error, warning, tag map and container types
// shared by the tag loader and the public API.
package types
