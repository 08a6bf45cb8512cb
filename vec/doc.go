// Package vec provides 2, 3 and 4 component vectors.
//
// Vectors are small comparable value types. Every operation returns a new
// vector and never mutates its receiver, so values can be shared freely
// between goroutines.
//
// Component order is x, y, z, w and is part of the API: Array returns the
// components in that order, ready for upload to a graphics API.
package vec
