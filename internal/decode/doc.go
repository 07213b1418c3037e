// Package decode turns compiled scenario blobs into descriptors.
//
// Blobs are concatenations of fixed-size big-endian records with no header.
// Record i decodes to descriptor i; a blob that does not split into whole
// records is rejected rather than silently truncated.
//
// Objects must be decoded before actions, since create and create2
// actions name the object they spawn.
package decode
