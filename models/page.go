// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// Page is a 1-based page index and page size pair.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"size"`
}

// Offset returns the number of rows to skip before the page starts.
// It saturates at math.MaxInt64, the largest offset SQL databases accept.
func (p Page) Offset() uint64 {
	if p.Number < 1 || p.Size < 1 {
		return 0
	}
	if p.OffsetOverflows() {
		return math.MaxInt64
	}
	return uint64(p.Number-1) * uint64(p.Size)
}

// OffsetOverflows reports whether (Number-1)*Size exceeds math.MaxInt64.
func (p Page) OffsetOverflows() bool {
	if p.Number < 1 || p.Size < 1 {
		return false
	}
	return uint64(p.Number-1) > math.MaxInt64/uint64(p.Size)
}

// Limit returns the maximum number of rows on the page.
func (p Page) Limit() uint64 {
	if p.Size < 1 {
		return 0
	}
	return uint64(p.Size)
}
