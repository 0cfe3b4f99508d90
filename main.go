/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ombralabs/ombra/engine"
	"github.com/ombralabs/ombra/engine/event"
	"github.com/ombralabs/ombra/testbed"
)

func main() {
	tb, err := testbed.NewTestGame()
	if err != nil {
		panic(err)
	}

	engine, err := engine.New(tb.Game)
	if err != nil {
		panic(err)
	}

	if err := engine.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// shutdown goroutine: posting is safe from here, the quit event is
	// picked up by the run loop on its next frame
	go func() {
		<-sigCh
		engine.Dispatcher().Post(event.NewApplicationQuitEvent())
	}()

	// run engine
	if err := engine.Run(); err != nil {
		panic(err)
	}
}
