// Package dynamics implements the compression pipeline of the compressor
// demo: what is heard and what is drawn.
//
// Building blocks:
//   - GainReductionDB: static threshold/knee/ratio curve in dB.
//   - EnvelopeFollower: sample-accurate attack/release peak follower.
//   - SegmentFollower: coarse per-segment follower used for drawing.
//
// Processors:
//   - Compress: per-channel sample-accurate compression without makeup gain.
//   - Visualize: per-pixel envelope and gain-reduction traces of channel 0.
//   - RenderReference: host-style compressor with automatic makeup gain.
//   - Normalize: in-place peak normalization for the reference path.
//
// Compress and Visualize use different algorithms. The drawn
// traces are consistent with what is heard but not numerically identical.
//
// All functions allocate their own state and output and are safe to call
// concurrently on different buffers.
package dynamics
