// Package config loads logger and bus options from a TOML file and can
// watch the file for live changes.
//
// The library itself requires no configuration file; this package exists
// for embedding applications that want to expose one:
//
//	[logger]
//	clear_on_init = false
//	use_timestamps = true
//	colors = true
//
//	[bus]
//	debug = false
//	max_listeners = 32
//
// A missing file is not an error and yields the library defaults.
package config
