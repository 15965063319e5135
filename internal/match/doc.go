// Package match ranks likely intended names for misspelled class, field,
// getter and provider names reported in mapping file diagnostics.
package match
