// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render consumes finalized drawpass tasks: it provides the
// concrete render targets (CPU pixmaps, GPU textures) and the executors
// that replay a task's passes against them.
//
// # Key Principle
//
// The executor layer RECEIVES a GPU device from the host application, it
// does NOT create one. Hosts hand in a gpucontext.DeviceProvider
// (DeviceHandle); the package never bootstraps instances or adapters.
//
// # Executors
//
//   - SoftwareExecutor: CPU rasterization of passes into a PixmapTarget,
//     using golang.org/x/image/vector for fill coverage.
//   - GPUExecutor: hybrid path that rasterizes CPU-side and uploads the result
//     through the gpucontext texture interfaces and presents it via the
//     host's TextureDrawer. WGSL pipeline sources for direct-GPU backends
//     are precompiled to SPIR-V with gogpu/naga on demand.
//
// # Thread Safety
//
// Executors are NOT safe for concurrent use. Each executor should be
// driven from a single goroutine, or external synchronization must be used.
package render
