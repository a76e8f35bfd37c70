package slipway

// Version is the version of Slipway. This variable is overridden at build
// time in the release pipeline using ldflags.
var Version = "0.0.0-dev"

// APIVersion identifies compatibility between the server and external API
// consumers.
//
// Backwards-incompatible changes to the event stream or resource payloads
// should result in a major version bump. New fields that are otherwise
// backwards-compatible should result in a minor version bump.
var APIVersion = "1.0"
