// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/drawpass"
	"github.com/gogpu/gputypes"
)

// GPU execution errors.
var (
	// ErrNilDrawer is returned when no texture drawer is supplied.
	ErrNilDrawer = errors.New("render: drawer must implement gpucontext.TextureDrawer")

	// ErrNilTextureCreator is returned when the drawer exposes no
	// texture creator for uploads.
	ErrNilTextureCreator = errors.New("render: drawer has no gpucontext.TextureCreator")

	// ErrInvalidTexture is returned when an uploaded texture does not
	// implement gpucontext.Texture.
	ErrInvalidTexture = errors.New("render: uploaded texture is not a gpucontext.Texture")

	// ErrTargetTooLarge is returned when a pass target exceeds the
	// device texture limits.
	ErrTargetTooLarge = errors.New("render: target exceeds device texture limits")
)

// GPUExecutorOptions controls GPU execution limits.
type GPUExecutorOptions struct {
	// MaxTextureDim caps pass target dimensions. Zero means the WebGPU
	// spec default limit.
	MaxTextureDim uint32
}

// DefaultGPUExecutorOptions returns options with the WebGPU default limits.
func DefaultGPUExecutorOptions() GPUExecutorOptions {
	limits := gputypes.DefaultLimits()
	return GPUExecutorOptions{
		MaxTextureDim: limits.MaxTextureDimension2D,
	}
}

// GPUExecutor replays finalized tasks through a host GPU context using the
// hybrid path: each pass is rasterized CPU-side into a staging pixmap,
// uploaded through the host's gpucontext.TextureCreator, and composited by
// its TextureDrawer.
//
// The executor receives the device from the host via DeviceHandle; it never
// creates instances, adapters, or devices of its own.
//
// GPUExecutor is not safe for concurrent use.
type GPUExecutor struct {
	device  DeviceHandle
	drawer  gpucontext.TextureDrawer
	opts    GPUExecutorOptions
	raster  *SoftwareExecutor
	staging *PixmapTarget
}

// NewGPUExecutor creates an executor sharing the host's device and drawing
// through the host's texture drawer.
func NewGPUExecutor(device DeviceHandle, drawer gpucontext.TextureDrawer, opts GPUExecutorOptions) (*GPUExecutor, error) {
	if drawer == nil {
		return nil, ErrNilDrawer
	}
	if device == nil {
		device = NullDeviceHandle{}
	}
	if opts.MaxTextureDim == 0 {
		opts.MaxTextureDim = DefaultGPUExecutorOptions().MaxTextureDim
	}
	return &GPUExecutor{
		device: device,
		drawer: drawer,
		opts:   opts,
		raster: NewSoftwareExecutor(),
	}, nil
}

// Device returns the host device handle the executor shares.
func (e *GPUExecutor) Device() DeviceHandle {
	return e.device
}

// SubmitTask executes a finalized task to completion. A nil task (finalize
// with nothing drawn) is a no-op.
func (e *GPUExecutor) SubmitTask(task drawpass.Task) error {
	if task == nil {
		return nil
	}
	return task.AddCommands(e)
}

// BeginRenderPass opens a pass, allocating the staging pixmap the pass
// rasterizes into. Loaded passes start from a transparent staging surface
// and composite over the previous texture contents at draw time.
func (e *GPUExecutor) BeginRenderPass(target drawpass.Target, load gputypes.LoadOp, clear gputypes.Color) error {
	if e.staging != nil {
		return ErrPassAlreadyOpen
	}
	w, h := target.Width(), target.Height()
	if uint32(w) > e.opts.MaxTextureDim || uint32(h) > e.opts.MaxTextureDim { //nolint:gosec // G115: dimensions are non-negative
		return fmt.Errorf("%w: %dx%d exceeds %d", ErrTargetTooLarge, w, h, e.opts.MaxTextureDim)
	}
	e.staging = NewPixmapTarget(w, h)
	return e.raster.BeginRenderPass(e.staging, load, clear)
}

// Record rasterizes one resolved op into the staging pixmap.
func (e *GPUExecutor) Record(op *drawpass.DrawOp) error {
	if e.staging == nil {
		return ErrNoActivePass
	}
	return e.raster.Record(op)
}

// EndRenderPass closes the pass, uploads the staging pixmap as a texture,
// and draws it through the host context.
//
// NewTextureFromRGBA waits for prior GPU work internally, so the upload is
// ordered after any earlier passes the host submitted.
func (e *GPUExecutor) EndRenderPass() error {
	if e.staging == nil {
		return ErrNoActivePass
	}
	staging := e.staging
	e.staging = nil
	if err := e.raster.EndRenderPass(); err != nil {
		return err
	}

	creator := e.drawer.TextureCreator()
	if creator == nil {
		return ErrNilTextureCreator
	}
	tex, err := creator.NewTextureFromRGBA(staging.Width(), staging.Height(), staging.Pixels())
	if err != nil {
		return fmt.Errorf("render: NewTextureFromRGBA failed: %w", err)
	}

	// Staging pixels are premultiplied alpha; mark the texture so the host
	// picks the BlendFactorOne pipeline.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}

	gpuTex, ok := tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	if err := e.drawer.DrawTexture(gpuTex, 0, 0); err != nil {
		return fmt.Errorf("render: DrawTexture failed: %w", err)
	}
	drawpass.Logger().Debug("uploaded render pass",
		"width", staging.Width(), "height", staging.Height())
	return nil
}
