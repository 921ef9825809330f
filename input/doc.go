// Package input opens record files for ingestion tooling, transparently
// decompressing gzip, Zstandard, S2 and LZ4 streams based on the file
// extension.
package input
