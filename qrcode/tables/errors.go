// Package tables holds the static, process-wide lookup data the encoder
// draws on: per-version geometry and error-correction block layouts, mode
// bit widths, the alphanumeric symbol table, and the eight data masks.
// Everything here is read-only after package init.
package tables

import "errors"

var errInvalidVersion = errors.New("qrcode/tables: invalid version number")
