// Package buffer provides AudioBuffer, the multi-channel container passed
// between decoders, the dynamics processors and the visualization code.
// Channels are plain []float64 slices so they can be handed straight to
// per-channel DSP routines.
package buffer
