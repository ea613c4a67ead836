package scheduler

import "time"

// Clock permite controlar o horário dos jobs nos testes
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock usa o relógio do sistema
func SystemClock() Clock {
	return systemClock{}
}

// FixedClock devolve sempre o mesmo instante
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
