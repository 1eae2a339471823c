package mps

import "errors"

// Sentinel errors returned by New, NewFromGraph, and Engine.ShortestSimplePaths.
var (
	// ErrNilGraph indicates a nil forward or reverse graph was supplied.
	ErrNilGraph = errors.New("mps: graph is nil")

	// ErrEmptyTarget indicates an empty target vertex ID.
	ErrEmptyTarget = errors.New("mps: target vertex ID is empty")

	// ErrEmptySource indicates an empty source vertex ID.
	ErrEmptySource = errors.New("mps: source vertex ID is empty")

	// ErrTargetNotFound indicates target is not a vertex of the graph.
	ErrTargetNotFound = errors.New("mps: target vertex not found in graph")

	// ErrSourceNotFound indicates source is not a vertex of the graph.
	ErrSourceNotFound = errors.New("mps: source vertex not found in graph")

	// ErrVertexMismatch indicates the forward and reverse graphs supplied to
	// New do not share the same vertex set.
	ErrVertexMismatch = errors.New("mps: forward and reverse graphs have different vertex sets")
)
