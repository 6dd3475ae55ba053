// Package batchrun performs one conversion run over a directory.
//
// Run resolves the tool directory for the host platform, takes a per-directory
// lock so two runs never race on the same destination files, scans the
// directory, builds and verifies the codec descriptors the scan needs, fills
// the work queue, and drains it with the workflow manager. Every failure
// before the first file is touched is returned as a fatal error; per-file
// failures only show up in the returned summary.
package batchrun
