package errors

var messages = map[Errno]string{
	// board / ROM assembly
	SetupError:         "%s",
	RequiredROMMissing: "required ROM role missing (%s)",
	ROMSizeMismatch:    "ROM %s is %d bytes, expected %d",
	UnknownROMRole:     "unrecognised ROM role (%s)",

	// bus / memory
	UnreadableAddress:      "memory location is not readable (%#04x)",
	UnwritableAddress:      "memory location is not writable (%#04x)",
	ConfigMemoryOutOfRange: "configuration memory offset out of range (%d)",

	// CPU
	InvalidOperationMidInstruction: "invalid operation attempted mid-instruction",

	// conformance harness
	VectorFileCannotOpen: "cannot open vector file (%s)",
	VectorFileMalformed:  "error parsing vector file (%s)",
	VectorMismatch:       "vector %s: %s",
}
