package main

import (
	"github.com/jetsetilly/apuconv/hardware/spec"
)

type context struct {
	spec spec.Spec
}

func (ctx *context) Spec() spec.Spec {
	return ctx.spec
}

// the in-memory log is always written to. whether it is seen depends on the
// -log flag
func (ctx *context) AllowLogging() bool {
	return true
}
