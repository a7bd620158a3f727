package tutorial

import (
	"strings"

	"dasa.cc/silky/gpu"
)

// DefaultGLSL is the version line used with desktop core profile contexts.
const DefaultGLSL = "330 core"

const colorVert = `
layout (location = 0) in vec3 aPosition;

void main() {
	gl_Position = vec4(aPosition, 1.0);
}
`

const colorFrag = `
out vec4 out_color;

void main() {
	out_color = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const textureVert = `
layout (location = 0) in vec3 aPosition;
layout (location = 1) in vec2 aTexCoord;
uniform mat4 uProjection;
out vec2 frag_texCoords;

void main() {
	gl_Position = uProjection * vec4(aPosition, 1.0);
	frag_texCoords = aTexCoord;
}
`

const textureFrag = `
in vec2 frag_texCoords;
uniform sampler2D uTexture0;
out vec4 out_color;

void main() {
	out_color = texture(uTexture0, frag_texCoords);
}
`

const blendFrag = `
in vec2 frag_texCoords;
uniform sampler2D uTexture0;
uniform sampler2D uTexture1;
uniform float uBlend;
out vec4 out_color;

void main() {
	out_color = mix(texture(uTexture0, frag_texCoords), texture(uTexture1, frag_texCoords), uBlend);
}
`

// versioned prefixes body with a #version line, and a default float precision
// for ES targets.
func versioned(version, body string) string {
	if version == "" {
		version = DefaultGLSL
	}
	var sb strings.Builder
	sb.WriteString("#version " + version + "\n")
	if strings.HasSuffix(version, " es") {
		sb.WriteString("precision mediump float;\n")
	}
	sb.WriteString(body)
	return sb.String()
}

// buildProgram builds from the configured shader names when both are set, and
// from the inline sources otherwise.
func buildProgram(ctx gpu.Context, opts Options, vert, frag string) (*gpu.Program, error) {
	var (
		vs gpu.VertSource = gpu.VertSrc(versioned(opts.GLSL, vert))
		fs gpu.FragSource = gpu.FragSrc(versioned(opts.GLSL, frag))
	)
	switch {
	case opts.VertexShader == "" || opts.FragmentShader == "":
	case opts.Assets:
		vs, fs = gpu.VertAsset(opts.VertexShader), gpu.FragAsset(opts.FragmentShader)
	default:
		vs, fs = gpu.VertFile(opts.VertexShader), gpu.FragFile(opts.FragmentShader)
	}
	return gpu.LoadProgram(ctx, vs, fs)
}
