package colormodel

import "errors"

var (
	// ErrInvalidHex is returned by ParseHexStrict for input that is not a 3- or 6-digit hex color.
	ErrInvalidHex = errors.New("invalid hex color")

	// ErrUnknownHarmony is returned for a harmony type outside the known set.
	ErrUnknownHarmony = errors.New("unknown harmony type")

	// ErrUnknownExportFormat is returned by ExportShades for an unknown format.
	ErrUnknownExportFormat = errors.New("unknown export format")
)
