package scalargrad

// Version is the module version, reported by `scalargrad version`.
const Version = "0.1.0"
