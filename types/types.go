// Package types defines core relationship types shared across the geopath library.
//
// This package provides Relationship, which describes spatial relationships between
// geometric entities.
//
// # Key Features
//
//   - Relationship Enum: Encapsulates possible geometric relationships between shapes, such as containment,
//     intersection, or equality, allowing for standardized comparisons between geometric objects.
//
// # Usage
//
// This package is primarily used internally within the geopath library to enable type safety and consistency
// in geometric operations. Functions and structures throughout the library rely on these types to enforce
// correct input parameters and return meaningful results.
//
// See the documentation for each type for more details.
package types
