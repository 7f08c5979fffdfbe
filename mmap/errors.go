package mmap

import "errors"

var (
	// ErrUnknownMode is returned by ParseMode for names outside Modes.
	ErrUnknownMode = errors.New("mmap: unknown installation mode")
	// ErrNoDevDir indicates neither an explicit devdir nor $DEVDIR is set.
	ErrNoDevDir = errors.New("mmap: unable to obtain the $DEVDIR path from the environment")
	// ErrInterrupted wraps the context error when Run is cancelled.
	ErrInterrupted = errors.New("mmap: memory map generation interrupted")
)
