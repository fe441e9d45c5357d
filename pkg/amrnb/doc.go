// ABOUTME: Package documentation for the opencore-amrnb binding
// ABOUTME: Notes the system library requirement
// Package amrnb binds the opencore-amrnb C library as the external frame
// decoder for amr.Session. It requires the opencore-amrnb development
// package at build time (libopencore-amrnb-dev on Debian/Ubuntu,
// opencore-amr via Homebrew).
package amrnb
