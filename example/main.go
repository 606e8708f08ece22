// Example draws a field of rotating, tinted sprites with a sprite batch.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Keys: 1-4 select the sort mode (none, texture, front-to-back, back-to-front),
// Escape quits. Pass -v for debug logging and -log to write logs to a
// rotating file instead of stderr.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-theft-auto/spritebatch"
	"github.com/go-theft-auto/spritebatch/backend/opengl"
)

const (
	windowWidth  = 1024
	windowHeight = 768
	windowTitle  = "spritebatch example"
)

var (
	verbose = flag.Bool("v", false, "enable debug logging")
	logFile = flag.String("log", "", "write logs to this file, rotated at 16 MB")
	sprites = flag.Int("n", 2000, "number of sprites")
)

func main() {
	flag.Parse()

	var w io.Writer = os.Stderr
	if *logFile != "" {
		lj := &lumberjack.Logger{Filename: *logFile, MaxSize: 16, MaxBackups: 2}
		defer lj.Close()
		w = lj
	}
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))

	var err error
	mainthread.Run(func() {
		err = mainthread.CallErr(func() error { return run(logger) })
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	window, err := opengl.OpenWindow(opengl.WindowConfig{
		Title: windowTitle, Width: windowWidth, Height: windowHeight, VSync: true,
	})
	if err != nil {
		return err
	}
	defer window.Close()

	dev := opengl.NewDevice()
	defer dev.Dispose()

	sb := spritebatch.New(dev, spritebatch.WithLogger(logger))
	if err := sb.Init(); err != nil {
		return fmt.Errorf("sprite batch: %w", err)
	}
	defer spritebatch.DisposeProgram()
	defer sb.Dispose()

	checker, err := dev.TextureFromImage(checkerImage(64, 8, color.RGBA{230, 230, 230, 255}, color.RGBA{60, 60, 70, 255}), 0)
	if err != nil {
		return fmt.Errorf("checker texture: %w", err)
	}
	defer dev.DeleteTexture(checker)
	rings, err := dev.TextureFromImage(ringImage(64), 0)
	if err != nil {
		return fmt.Errorf("ring texture: %w", err)
	}
	defer dev.DeleteTexture(rings)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	mode := spritebatch.SortTexture
	frame := 0
	for !window.ShouldClose() {
		window.Poll()
		switch {
		case window.Pressed(glfw.KeyEscape):
			window.SetShouldClose(true)
		case window.Pressed(glfw.Key1):
			mode = spritebatch.SortNone
		case window.Pressed(glfw.Key2):
			mode = spritebatch.SortTexture
		case window.Pressed(glfw.Key3):
			mode = spritebatch.SortFrontToBack
		case window.Pressed(glfw.Key4):
			mode = spritebatch.SortBackToFront
		}

		fw, fh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		t := float32(glfw.GetTime())
		sb.Begin()
		// Background strip through the white pixel texture.
		sb.Draw(spritebatch.NullHandle, mgl32.Vec2{0, 0}, mgl32.Vec2{float32(fw), 24}, spritebatch.RGBA(20, 20, 24, 255), 1)
		for i := 0; i < *sprites; i++ {
			tex := checker
			if i%2 == 1 {
				tex = rings
			}
			fi := float32(i)
			x := float32(fw) * (0.5 + 0.45*float32(math.Cos(float64(fi*0.37+t*0.2))))
			y := float32(fh) * (0.5 + 0.45*float32(math.Sin(float64(fi*0.53+t*0.3))))
			tint := spritebatch.RGBAf(0.5+0.5*float32(math.Sin(float64(fi))), 0.7, 1, 0.8)
			sb.DrawRotated(tex, spritebatch.FullUVRect, mgl32.Vec2{1, 1},
				mgl32.Vec2{x, y}, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{32, 32},
				t+fi*0.1, tint, fi/float32(*sprites))
		}
		if err := sb.End(mode); err != nil {
			return fmt.Errorf("end frame: %w", err)
		}

		stats, err := sb.RenderScreen(mgl32.Vec2{float32(fw), float32(fh)})
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if frame%300 == 0 {
			logger.Info("frame", "mode", mode, "stats", stats, "capacity", sb.Capacity())
		}
		frame++

		window.SwapBuffers()
	}

	return nil
}

// checkerImage returns a size x size checkerboard with cells of cell pixels.
func checkerImage(size, cell int, a, b color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// ringImage returns concentric rings fading out toward the edge.
func ringImage(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) / half
			if d > 1 {
				continue
			}
			v := uint8(255 * (0.5 + 0.5*math.Cos(d*math.Pi*6)))
			img.SetNRGBA(x, y, color.NRGBA{v, v, 255, uint8(255 * (1 - d))})
		}
	}
	return img
}
