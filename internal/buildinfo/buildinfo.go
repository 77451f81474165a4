package buildinfo

// Version is the semantic version of huggiesd, set at build time via -ldflags.
var Version = "dev"
