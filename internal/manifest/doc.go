// Package manifest loads subtitle events from a TOML manifest.
//
// A manifest stands in for a demuxed bitmap subtitle stream: each
// [[event]] table carries the presentation timestamps in 90 kHz ticks and
// the path of an already decoded bitmap. Image paths are relative to the
// manifest's directory.
//
//	[[event]]
//	start_ticks = 0
//	end_ticks = 9000
//	image = "0001.png"
//
// Records decodes every image up front so recognition never starts on a
// batch that cannot be read completely.
package manifest
