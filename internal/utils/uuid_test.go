// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	if first == uuid.Nil || second == uuid.Nil {
		t.Fatal("expected non-nil identifiers")
	}
	if first == second {
		t.Error("expected distinct identifiers")
	}
	if first.Version() != 7 {
		t.Errorf("expected version 7, got %d", first.Version())
	}
}
