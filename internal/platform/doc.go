// Package platform provides cross-platform filesystem operations: copying a
// file while keeping its permission bits, and a chmod that is a no-op on
// Windows.
package platform
