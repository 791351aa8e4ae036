// Package unichar is a Unicode transcoding engine that converts text between
// LATIN1, UTF-8, UTF-16 (LE/BE/native), and UTF-32. It exposes one
// polymorphic operation set — validate, length, convert — parameterised over
// source encoding, destination encoding, endian, and processing policy,
// backed by a scalar reference implementation and a 64-byte-block wide
// implementation that automatically take over from each other based on input
// size. See pkg/transcode for the public entry points.
package unichar
