package clarion

import "errors"

// Every fallible operation in this package returns one of these values,
// comparable with errors.Is.
var (
	// ErrConversionOverflowed reports that the numeric result of a
	// conversion does not fit the target integer width.
	ErrConversionOverflowed = errors.New("clarion: conversion overflowed the target range")

	// ErrOutOfRange reports that an input value falls outside the
	// semantically valid range for its type.
	ErrOutOfRange = errors.New("clarion: value out of range")
)
