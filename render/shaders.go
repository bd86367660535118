// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

// WGSL pipeline sources for direct-GPU backends. The hybrid GPUExecutor
// does not run these itself; they are compiled on demand for hosts that
// build their own stencil-and-cover pipelines from recorded passes.

// fillShaderWGSL covers the convex-fill and cover stages: positions arrive
// already in clip space and the fragment stage writes a uniform color.
const fillShaderWGSL = `
struct FillUniforms {
    color: vec4<f32>,
};

@group(0) @binding(0) var<uniform> fill: FillUniforms;

@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return fill.color;
}
`

// stencilShaderWGSL is the winding pass of stencil-and-fill: it touches only
// the stencil buffer, so the fragment stage emits nothing visible.
const stencilShaderWGSL = `
@vertex
fn vs_main(@location(0) position: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(position, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 0.0);
}
`

var (
	fillShaderOnce  sync.Once
	fillShaderSPV   []byte
	fillShaderErr   error
	stencilOnce     sync.Once
	stencilSPV      []byte
	stencilErr      error
)

// FillShaderSPIRV compiles the fill pipeline's WGSL to SPIR-V.
// Compilation runs once; subsequent calls return the cached result.
func FillShaderSPIRV() ([]byte, error) {
	fillShaderOnce.Do(func() {
		fillShaderSPV, fillShaderErr = naga.Compile(fillShaderWGSL)
		if fillShaderErr != nil {
			fillShaderErr = fmt.Errorf("render: failed to compile fill shader: %w", fillShaderErr)
		}
	})
	return fillShaderSPV, fillShaderErr
}

// StencilShaderSPIRV compiles the stencil pipeline's WGSL to SPIR-V.
// Compilation runs once; subsequent calls return the cached result.
func StencilShaderSPIRV() ([]byte, error) {
	stencilOnce.Do(func() {
		stencilSPV, stencilErr = naga.Compile(stencilShaderWGSL)
		if stencilErr != nil {
			stencilErr = fmt.Errorf("render: failed to compile stencil shader: %w", stencilErr)
		}
	})
	return stencilSPV, stencilErr
}
