// Package api holds types and interfaces that are common to gomalloc
// packages and its applications.
package api
