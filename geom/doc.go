// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package geom provides the geometric value types consumed by the drawpass
// pipeline: device-space rectangles, 2D affine transforms, shape descriptors,
// and the occlusion-query collaborators (OcclusionCuller, BoundsManager) that
// DrawPass construction uses to drop fully hidden draws.
//
// All coordinates are float32. Rectangles follow the min/max convention of
// the scene encoding: an empty rectangle has inverted bounds so that union
// operations start from a valid identity.
package geom
