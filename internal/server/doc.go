// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the company directory.
//
// It covers startup, OS signal handling and graceful shutdown bounded by the
// configured shutdown timeout.
package server
