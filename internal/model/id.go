package model

import "github.com/google/uuid"

// IsID reports whether s can name a stored row. Ids of other shapes, such as the
// fallback catalogue's, never match one.
func IsID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
