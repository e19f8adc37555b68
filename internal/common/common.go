// Package common holds small generic helpers shared across packages.
package common

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
