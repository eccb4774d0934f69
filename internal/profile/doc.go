// Package profile loads named password settings from HCL files.
//
// A configuration is one file or a directory of .hcl files. Each may hold a
// single `defaults` block and any number of `profile "<name>"` blocks; all
// attributes are optional:
//
//	defaults {
//	  length = 20
//	}
//
//	profile "wifi" {
//	  length            = limits.max_length / 32
//	  classes           = ["lower", "digits"]
//	  exclude_ambiguous = true
//	}
//
// Expressions may reference `limits.max_length` and `limits.default_length`
// and call min() and max(). Resolving a profile overlays it on the defaults.
package profile
