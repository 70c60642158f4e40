// Package htmlint validates the semantics of HTML documents against the
// content-model rules of the HTML Living Standard, and enumerates the legal
// insertions at a cursor position for editor completion.
//
// The package operates on a flat, arena-indexed node tree (see Tree). The
// validator walks the tree once, depth first, checking each element's
// placement and attributes against its ElementDesc and appending typed
// Diagnostics. The completion oracle reuses the exact same descriptors and
// per-element scan states, so the two can never disagree about what is
// legal at a given position.
package htmlint

import "errors"

const Version = "0.1.0"

// ErrSourceTooLarge is returned by Parse when the input exceeds the
// uint32 span range the tree's offsets are stored in.
var ErrSourceTooLarge = errors.New("source exceeds the 4 GiB span range")
