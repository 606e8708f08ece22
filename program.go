package spritebatch

import "sync"

// Uniform names of the sprite program.
const (
	UniformWorld   = "World"
	UniformVP      = "VP"
	UniformTexture = "SBTex"
)

// spriteVertexShader transforms by World then VP and passes the tiling data
// through to the fragment stage.
const spriteVertexShader = `
#version 410 core
uniform mat4 World;
uniform mat4 VP;

in vec4 vPosition;
in vec4 vTint;
in vec2 vUV;
in vec4 vUVRect;

out vec4 fTint;
out vec2 fUV;
flat out vec4 fUVRect;

void main() {
    fTint = vTint;
    fUV = vUV;
    fUVRect = vUVRect;
    vec4 worldPos = World * vPosition;
    gl_Position = VP * worldPos;
}
`

// spriteFragmentShader repeats the atlas sub-rectangle across the quad:
// the fractional part of the tiling coordinate is mapped into the rect.
const spriteFragmentShader = `
#version 410 core
uniform sampler2D SBTex;

in vec4 fTint;
in vec2 fUV;
flat in vec4 fUVRect;

out vec4 fColor;

void main() {
    fColor = texture(SBTex, fract(fUV.xy) * fUVRect.zw + fUVRect.xy) * fTint;
}
`

// SpriteProgramSource is the source of the shared sprite program.
var SpriteProgramSource = ProgramSource{
	Vertex:     spriteVertexShader,
	Fragment:   spriteFragmentShader,
	Attributes: []string{"vPosition", "vTint", "vUV", "vUVRect"},
}

// spriteProgram is the process-wide program shared by every batch.
// It is created by the first successful Init and torn down by DisposeProgram.
var spriteProgram struct {
	mu      sync.Mutex
	program Program
}

// acquireProgram returns the shared program, compiling it on dev the first time.
func acquireProgram(dev Device) (Program, error) {
	spriteProgram.mu.Lock()
	defer spriteProgram.mu.Unlock()

	if spriteProgram.program != nil {
		return spriteProgram.program, nil
	}
	p, err := dev.CompileProgram(SpriteProgramSource)
	if err != nil {
		return nil, resourceError("sprite program", err)
	}
	if p == nil || p.ID() == NullHandle {
		if p != nil {
			p.Dispose()
		}
		return nil, resourceError("sprite program", nil)
	}
	spriteProgram.program = p
	return p, nil
}

// SharedProgram returns the shared sprite program, or nil before the first
// successful Init.
func SharedProgram() Program {
	spriteProgram.mu.Lock()
	defer spriteProgram.mu.Unlock()
	return spriteProgram.program
}

// isSharedProgram reports whether p is the live shared program.
func isSharedProgram(p Program) bool {
	spriteProgram.mu.Lock()
	defer spriteProgram.mu.Unlock()
	return p != nil && p == spriteProgram.program
}

// DisposeProgram releases the shared sprite program. Call it once at
// application shutdown, after every batch is done rendering. The next Init
// compiles a new program.
func DisposeProgram() {
	spriteProgram.mu.Lock()
	defer spriteProgram.mu.Unlock()

	if spriteProgram.program != nil {
		spriteProgram.program.Dispose()
		spriteProgram.program = nil
	}
}
