// Package core defines sentinel errors.
package core

import "errors"

var (
	// Model construction errors
	ErrUnknownModel = errors.New("erratic: unknown error model")

	// Configuration errors
	ErrConfigInvalid = errors.New("erratic: invalid configuration")

	// Trace file errors
	ErrTraceDecode = errors.New("erratic: trace decode failed")

	// Replay source errors
	ErrPcapOpen = errors.New("erratic: pcap open failed")
)
