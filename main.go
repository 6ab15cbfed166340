package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"syscall"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/glquads/quads"
)

func init() {
	// glfw and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	mainContext, mainQuit := context.WithCancelCause(context.Background())
	signalContext, stop := signal.NotifyContext(mainContext, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(signalContext, mainQuit, DefaultConfig())
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}

	if err := context.Cause(mainContext); err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
	}
}

func run(ctx context.Context, quit context.CancelCauseFunc, cfg Config) error {
	err := glfw.Init()
	if err != nil {
		return fmt.Errorf("glfw.Init failed: %w", err)
	}
	defer glfw.Terminate()
	fmt.Println("GLFW", glfw.GetVersionString())

	window, err := NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	renderer, err := NewRenderer(quads.Default(), quads.NewScene())
	if err != nil {
		log.Println(err)
	}
	defer renderer.Delete()

	defer CatchPanicToContext(quit)
	for !window.ShouldClose() {
		select {
		case <-ctx.Done():
			window.SetShouldClose(true)
			continue
		default:
		}

		renderer.Draw(glfw.GetTime())

		window.SwapBuffers()
		glfw.PollEvents()
	}

	return nil
}

// CatchPanicToContext recovers a panic and cancels the context with it as the cause.
// It must be deferred directly.
func CatchPanicToContext(ctxCancel context.CancelCauseFunc) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		if ctxCancel != nil {
			ctxCancel(err)
		}
	}
}
