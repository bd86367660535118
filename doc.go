// Package drawpass batches immediate-mode draw commands into ordered,
// occlusion-culled render passes for submission to a GPU backend.
//
// The pipeline has three stages:
//
//   - DrawContext buffers heterogeneous draw commands (path fills, convex
//     fills, strokes) against one destination target. Submission order does
//     not matter; every command carries an explicit DrawOrder key.
//   - SnapDrawPass freezes the buffered commands into an immutable DrawPass:
//     a stable sort by DrawOrder, with an optional geom.OcclusionCuller
//     dropping draws that are fully hidden under later opaque draws.
//   - SnapRenderPassTask bundles all snapped passes into one RenderPassTask,
//     a unit a backend executor replays atomically via the CommandRecorder
//     contract.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	dc := drawpass.MakeDrawContext(target, drawpass.ColorSpaceSRGB,
//	    gputypes.TextureFormatRGBA8Unorm, drawpass.AlphaTypePremul)
//
//	dc.FillConvexPath(geom.Identity(), shape, scissor, order, &paint)
//	dc.SnapDrawPass(nil)
//
//	task := dc.SnapRenderPassTask(nil)
//	exec := render.NewSoftwareExecutor()
//	exec.SubmitTask(task)
//	dc.Close()
//
// The pipeline is single-threaded: a DrawContext and everything it produces
// must be driven from one goroutine, or callers must serialize access.
package drawpass
