// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Offset(t *testing.T) {
	tests := []struct {
		name         string
		page         Page
		wantOffset   uint64
		wantOverflow bool
	}{
		{name: "first page", page: Page{Number: 1, Size: 10}, wantOffset: 0},
		{name: "second page", page: Page{Number: 2, Size: 10}, wantOffset: 10},
		{name: "invalid number", page: Page{Number: 0, Size: 10}, wantOffset: 0},
		{name: "invalid size", page: Page{Number: 3, Size: 0}, wantOffset: 0},
		{name: "exactly max offset", page: Page{Number: math.MaxInt64/4 + 1, Size: 4}, wantOffset: math.MaxInt64 - 3},
		{name: "max number size one", page: Page{Number: math.MaxInt64, Size: 1}, wantOffset: math.MaxInt64 - 1},
		{name: "product wraps to zero", page: Page{Number: 4611686018427387905, Size: 4}, wantOffset: math.MaxInt64, wantOverflow: true},
		{name: "max number", page: Page{Number: math.MaxInt64, Size: 10}, wantOffset: math.MaxInt64, wantOverflow: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOverflow, tt.page.OffsetOverflows())
			assert.Equal(t, tt.wantOffset, tt.page.Offset())
		})
	}
}
