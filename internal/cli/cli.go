package cli

// Name is the CLI name
const Name = "milvus-project-helper"

// Version is the CLI version, set through ldflags at build time
var Version = "0.0.0-unset"
