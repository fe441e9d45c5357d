// ABOUTME: Package documentation for PCM audio types
// ABOUTME: Shared between the decode session, the player and file sinks
// Package audio holds the PCM types shared by the decode session and its
// consumers: a stream Format, a decoded sample Buffer and little-endian
// 16-bit packing helpers.
package audio
