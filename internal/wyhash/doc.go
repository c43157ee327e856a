// Package wyhash implements the 64-bit wyhash non-cryptographic hash, used
// to fingerprint benchmark inputs so two runs can be checked for identical
// payloads.
package wyhash
