package game

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Instanced box program: every static and dynamic solid in the scene goes
// through this one shader. Per-instance transform is position + scale +
// yaw; full matrices per instance would be wasted on axis-aligned boxes.
const boxVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec3 iPos;
layout(location = 3) in vec3 iScale;
layout(location = 4) in float iYaw;
layout(location = 5) in vec3 iColor;
layout(location = 6) in float iEmissive;

uniform mat4 uViewProj;

out vec3 vNormal;
out vec3 vColor;
out vec3 vWorldPos;
out float vEmissive;

void main() {
	float c = cos(iYaw);
	float s = sin(iYaw);
	vec3 scaled = aPos * iScale;
	vec3 rotated = vec3(
		scaled.x * c + scaled.z * s,
		scaled.y,
		-scaled.x * s + scaled.z * c
	);
	vec3 world = rotated + iPos;
	vec3 n = vec3(aNormal.x * c + aNormal.z * s, aNormal.y, -aNormal.x * s + aNormal.z * c);

	vNormal = n;
	vColor = iColor;
	vWorldPos = world;
	vEmissive = iEmissive;
	gl_Position = uViewProj * vec4(world, 1.0);
}
` + "\x00"

const boxFragmentShader = `#version 410 core
in vec3 vNormal;
in vec3 vColor;
in vec3 vWorldPos;
in float vEmissive;

uniform vec3 uSunDir;
uniform float uAmbient;
uniform vec3 uSunTint;
uniform vec3 uCamPos;
uniform vec3 uSkyColor;
uniform float uFogDensity;
uniform float uEmissiveScale;

out vec4 fragColor;

void main() {
	float diff = max(dot(normalize(vNormal), normalize(uSunDir)), 0.0);
	vec3 lit = vColor * uSunTint * (uAmbient * 0.6 + diff * uAmbient * 0.5);

	float glow = vEmissive * uEmissiveScale;
	lit = mix(lit, vColor, clamp(glow, 0.0, 1.0));

	float dist = length(vWorldPos - uCamPos);
	float fog = 1.0 - exp(-uFogDensity * dist * dist * 0.01);
	fragColor = vec4(mix(lit, uSkyColor, clamp(fog, 0.0, 1.0)), 1.0);
}
` + "\x00"

// Point-sprite program for particles: soft round sprites, alpha from the
// remaining life fraction, additive blending set by the caller.
const pointVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in float aSize;
layout(location = 2) in vec3 aColor;
layout(location = 3) in float aFade;

uniform mat4 uViewProj;
uniform float uViewportH;

out vec3 vColor;
out float vFade;

void main() {
	vColor = aColor;
	vFade = aFade;
	vec4 clip = uViewProj * vec4(aPos, 1.0);
	gl_Position = clip;
	float w = max(clip.w, 0.001);
	gl_PointSize = clamp(aSize * uViewportH / w, 1.0, 64.0);
}
` + "\x00"

const pointFragmentShader = `#version 410 core
in vec3 vColor;
in float vFade;

out vec4 fragColor;

void main() {
	vec2 d = gl_PointCoord - vec2(0.5);
	float r2 = dot(d, d);
	if (r2 > 0.25) discard;
	float soft = 1.0 - smoothstep(0.05, 0.25, r2);
	fragColor = vec4(vColor, soft * vFade);
}
` + "\x00"

// HUD program: untextured quads in NDC with a flat color.
const hudVertexShader = `#version 410 core
layout(location = 0) in vec2 aPos;

uniform vec4 uRect; // x, y, w, h in NDC

void main() {
	vec2 p = uRect.xy + aPos * uRect.zw;
	gl_Position = vec4(p, 0.0, 1.0);
}
` + "\x00"

const hudFragmentShader = `#version 410 core
uniform vec4 uColor;

out vec4 fragColor;

void main() {
	fragColor = uColor;
}
` + "\x00"

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(buf))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %s", strings.TrimRight(buf, "\x00"))
	}
	return shader, nil
}

func linkProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	gl.DetachShader(program, vs)
	gl.DetachShader(program, fs)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		buf := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(program, logLen, nil, gl.Str(buf))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link program: %s", strings.TrimRight(buf, "\x00"))
	}
	return program, nil
}
