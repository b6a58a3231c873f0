// Package repository implements the data access layer for the application.
// Every repository operates on its whole collection: reads load the full
// array from the store, mutations rewrite it wholesale.
package repository

import (
	"fmt"

	"ripple/internal/models"
)

// persistErr wraps a failed collection write. The storage adapter has already
// logged the cause.
func persistErr(key string) error {
	return models.NewInternalError(fmt.Errorf("persist collection %q", key))
}
