package version

// AppVersion is the aboutctl release version.
// Overridable at build time via -ldflags "-X aboutctl/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
