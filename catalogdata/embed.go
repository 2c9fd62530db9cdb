// Package catalogdata embeds the static catalog content so the server works
// with zero external files or services. The JSON decodes straight into the
// domain catalog types.
package catalogdata

import _ "embed"

// Destinations holds the raw bytes of destinations.json, embedded at compile
// time. This is the portal's baseline catalog; remotely fetched entries are
// merged on top of it at runtime.
//
//go:embed destinations.json
var Destinations []byte

// Vehicles holds the raw bytes of vehicles.json, embedded at compile time.
// The vehicle fleet is fully static.
//
//go:embed vehicles.json
var Vehicles []byte
