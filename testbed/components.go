package testbed

import (
	"github.com/ombralabs/ombra/engine/entity"
)

const (
	KindPosition entity.Kind = "position"
	KindVelocity entity.Kind = "velocity"
)

type Position struct {
	X float64
	Y float64
}

func (Position) Kind() entity.Kind { return KindPosition }

type Velocity struct {
	DX float64
	DY float64
}

func (Velocity) Kind() entity.Kind { return KindVelocity }
