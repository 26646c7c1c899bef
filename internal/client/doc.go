// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the trace-warning client runtime.
//
// It wires the periodic package download job and the optional local control
// server into a single process lifecycle.
package client
