// Package codec describes the audio formats sndconvert understands and the
// external tools that decode, encode, and analyze them.
//
// A Descriptor is built once per run for a resolved tool directory. New
// verifies that the binaries for the requested capabilities are installed and
// fails immediately otherwise, so a run never starts with a broken codec.
// Registry holds the target descriptor (encode capability) alongside the
// descriptors for every source format present in the scanned directory.
package codec
