// Package fileops implements the filesystem helpers used by packaging
// scripts: recursive globbing with exclusion, mirroring a source tree's
// directories, copying or symlinking source files into that mirror,
// writing package-marker files, and keeping a mirror in sync while the
// source tree changes.
//
// None of the functions take locks. Concurrent callers racing to create the
// same directory are tolerated by treating "already exists" as success.
package fileops
