// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive POS terminal runtime.
//
// It wires terminal UI flows, offline sale services, and background
// synchronization into a single process lifecycle.
package client
