// Command gen renders sample sprite scenes offscreen, captures framebuffer
// pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/go-theft-auto/spritebatch"
	"github.com/go-theft-auto/spritebatch/backend/opengl"
)

var logFile = flag.String("log", "", "write debug logs to this file")

func main() {
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if *logFile != "" {
		lj := &lumberjack.Logger{Filename: *logFile, MaxSize: 4, MaxBackups: 1}
		defer lj.Close()
		logger = slog.New(slog.NewTextHandler(lj, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var err error
	mainthread.Run(func() {
		err = mainthread.CallErr(func() error { return run(logger) })
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// textures used by the sample scenes.
type textures struct {
	checker uint32
	disc    uint32
}

// screenshot defines a single scene to capture.
type screenshot struct {
	name   string // filename without extension
	width  int    // viewport width
	height int    // viewport height
	mode   spritebatch.SortMode
	opts   []spritebatch.RenderOption
	draw   func(sb *spritebatch.SpriteBatch, tex textures)
}

func run(logger *slog.Logger) error {
	// The hidden window stays at 800x600, larger than every screenshot.
	window, err := opengl.OpenWindow(opengl.WindowConfig{Title: "screenshot-gen", Width: 800, Height: 600, Hidden: true})
	if err != nil {
		return err
	}
	defer window.Close()

	dev := opengl.NewDevice()
	defer dev.Dispose()

	var tex textures
	if tex.checker, err = dev.TextureFromImage(checker(64, 8), 0); err != nil {
		return fmt.Errorf("checker texture: %w", err)
	}
	defer dev.DeleteTexture(tex.checker)
	if tex.disc, err = dev.TextureFromImage(disc(128), 64); err != nil {
		return fmt.Errorf("disc texture: %w", err)
	}
	defer dev.DeleteTexture(tex.disc)
	defer spritebatch.DisposeProgram()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(dev, logger, tex, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(dev *opengl.Device, logger *slog.Logger, tex textures, s screenshot, outDir string) error {
	// Fresh batch per screenshot so buffer growth shows up in the logs.
	sb := spritebatch.New(dev, spritebatch.WithLogger(logger.With("shot", s.name)))
	if err := sb.Init(); err != nil {
		return err
	}
	defer sb.Dispose()

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.ClearDepth(1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	sb.Begin()
	s.draw(sb, tex)
	if err := sb.End(s.mode); err != nil {
		return err
	}
	stats, err := sb.RenderScreen(mgl32.Vec2{float32(s.width), float32(s.height)}, s.opts...)
	if err != nil {
		return err
	}
	logger.Info("captured", "shot", s.name, "stats", stats)

	// Read pixels
	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all scenes to generate.
func buildScreenshots() []screenshot {
	var shots []screenshot

	// The same overlapping scene under every sort mode. Without a depth test
	// the draw order decides which sprite ends up on top.
	for _, mode := range []spritebatch.SortMode{
		spritebatch.SortNone,
		spritebatch.SortTexture,
		spritebatch.SortFrontToBack,
		spritebatch.SortBackToFront,
	} {
		shots = append(shots, screenshot{
			name:   "sort_" + mode.String(),
			width:  320,
			height: 240,
			mode:   mode,
			draw:   drawOverlap,
		})
	}

	shots = append(shots,
		screenshot{
			name:   "depth_test",
			width:  320,
			height: 240,
			mode:   spritebatch.SortTexture,
			opts:   []spritebatch.RenderOption{spritebatch.WithDepthState(spritebatch.DepthReadWrite)},
			draw:   drawOverlap,
		},
		screenshot{
			name:   "tiling",
			width:  320,
			height: 240,
			mode:   spritebatch.SortTexture,
			opts:   []spritebatch.RenderOption{spritebatch.WithSamplerState(spritebatch.SamplerPointWrap)},
			draw: func(sb *spritebatch.SpriteBatch, tex textures) {
				sb.DrawTiled(tex.checker, spritebatch.FullUVRect, mgl32.Vec2{4, 3},
					mgl32.Vec2{16, 16}, mgl32.Vec2{288, 208}, spritebatch.ColorWhite, 0.5)
			},
		},
		screenshot{
			name:   "rotation",
			width:  320,
			height: 240,
			mode:   spritebatch.SortTexture,
			draw: func(sb *spritebatch.SpriteBatch, tex textures) {
				center := mgl32.Vec2{160, 120}
				for i := 0; i < 12; i++ {
					a := float32(i) * math.Pi / 6
					sb.DrawRotated(tex.checker, spritebatch.FullUVRect, spritebatch.NoTiling,
						center, mgl32.Vec2{0, 0.5}, mgl32.Vec2{100, 12}, a,
						spritebatch.RGBAf(1, float32(i)/12, 0.3, 1), 0.5)
				}
				sb.DrawPivot(spritebatch.NullHandle, spritebatch.FullUVRect, spritebatch.NoTiling,
					center, mgl32.Vec2{0.5, 0.5}, mgl32.Vec2{10, 10}, spritebatch.ColorWhite, 0.4)
			},
		},
	)

	return shots
}

// drawOverlap draws interleaved textures at alternating depths so each sort
// mode produces a visibly different stacking order.
func drawOverlap(sb *spritebatch.SpriteBatch, tex textures) {
	tints := []uint32{spritebatch.ColorRed, spritebatch.ColorGreen, spritebatch.ColorBlue, spritebatch.ColorYellow, spritebatch.ColorCyan}
	for i, tint := range tints {
		t := tex.checker
		if i%2 == 1 {
			t = tex.disc
		}
		depth := float32((i*3)%len(tints)) / float32(len(tints))
		pos := mgl32.Vec2{40 + float32(i)*45, 50 + float32(i%2)*40}
		sb.Draw(t, pos, mgl32.Vec2{110, 110}, tint&0xccffffff, depth)
	}
}

func checker(size, cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := color.RGBA{235, 235, 235, 255}
			if (x/cell+y/cell)%2 == 1 {
				c = color.RGBA{90, 90, 100, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func disc(size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if math.Hypot(float64(x)+0.5-half, float64(y)+0.5-half) <= half {
				img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}
