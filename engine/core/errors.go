package core

import (
	"errors"
)

var (
	ErrEngineNotInitialized = errors.New("engine is not initialized, call Initialize first")
	ErrUnknown              = errors.New("unknown")
)
