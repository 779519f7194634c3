package loaders

import "errors"

// Sentinel errors callers can match with errors.Is, each wrapped with
// filename/context detail at the call site (spec §7.1 scene-construction
// faults).
var (
	ErrImageNotFound  = errors.New("image file not found")
	ErrImageDecode    = errors.New("image decode failed")
	ErrMeshNotFound   = errors.New("mesh file not found")
	ErrMeshParse      = errors.New("mesh parse failed")
	ErrUnsupportedExt = errors.New("unsupported file extension")
)
