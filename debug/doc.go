// Package debug switches on diagnostic output from environment variables.
//
// Each switch is read once at program start:
//
//	JSONENC_DEBUG_CONTAINERS  container creation and misuse
//	JSONENC_DEBUG_FORMAT      strategy resolution while rendering
//	JSONENC_DEBUG_VISIT       reflection visitor traversal
package debug
