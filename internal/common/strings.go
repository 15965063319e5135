package common

// UnknownStr is the printed form of unrecognized enum values.
const UnknownStr = "unknown"
