package uniglsl

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gogpu/uniglsl/binding"
	"github.com/gogpu/uniglsl/glsl"
)

// ---------------------------------------------------------------------------
// Test shader sources: realistic shader files at different sizes
// ---------------------------------------------------------------------------

// shaderSmallVertex is a minimal vertex shader.
const shaderSmallVertex = `
attribute vec4 a_pos;
void main() {
    gl_Position = a_pos;
}
`

// shaderLargeFragment is a lighting fragment shader with directives,
// helpers and several uniforms.
const shaderLargeFragment = `#version 100
#ifdef GL_FRAGMENT_PRECISION_HIGH
precision highp float;
#else
precision mediump float;
#endif

uniform sampler2D u_albedo;
uniform sampler2D u_normal;
uniform samplerCube u_env;
uniform vec3 u_light_dir, u_light_color;
uniform float u_roughness, u_metallic;
uniform mat3 u_normal_matrix;

varying vec2 v_uv;
varying vec3 v_normal;
varying vec3 v_view;

const float PI = 3.14159265;

vec3 fresnel(vec3 f0, float cos_theta) {
    return f0 + (1.0 - f0) * pow(1.0 - cos_theta, 5.0);
}

float distribution(vec3 n, vec3 h, float roughness) {
    float a = roughness * roughness;
    float nh = max(dot(n, h), 0.0);
    float d = nh * nh * (a * a - 1.0) + 1.0;
    return a * a / (PI * d * d);
}

void main() {
    vec3 n = normalize(u_normal_matrix * (texture2D(u_normal, v_uv).xyz * 2.0 - 1.0));
    vec3 v = normalize(v_view);
    vec3 h = normalize(v + u_light_dir);
    vec3 albedo = texture2D(u_albedo, v_uv).rgb;
    vec3 f = fresnel(mix(vec3(0.04), albedo, u_metallic), max(dot(h, v), 0.0));
    float d = distribution(n, h, u_roughness);
    vec3 env = textureCube(u_env, reflect(-v, n)).rgb;
    gl_FragColor = vec4(albedo * u_light_color * d + f * env, 1.0);
}
`

// shaderLargeVertex pairs with shaderLargeFragment.
const shaderLargeVertex = `#version 100
uniform mat4 u_mvp;
uniform mat4 u_model;
attribute vec3 a_pos;
attribute vec3 a_normal;
attribute vec2 a_uv;
varying vec2 v_uv;
varying vec3 v_normal;
varying vec3 v_view;
invariant gl_Position;

void main() {
    v_uv = a_uv;
    v_normal = mat3(u_model) * a_normal;
    v_view = -(u_model * vec4(a_pos, 1.0)).xyz;
    gl_Position = u_mvp * vec4(a_pos, 1.0);
}
`

type shaderCase struct {
	name   string
	source string
}

var shadersBySize = []shaderCase{
	{"small_vertex", shaderSmallVertex},
	{"large_vertex", shaderLargeVertex},
	{"large_fragment", shaderLargeFragment},
	{"repeated_declarations", strings.Repeat("uniform highp vec4 u_a, u_b[4];\nattribute vec3 a_c;\n", 64)},
}

// ---------------------------------------------------------------------------
// End-to-End: scan, reflect and link
// ---------------------------------------------------------------------------

// BenchmarkScan benchmarks whole-file scanning grouped by shader size.
func BenchmarkScan(b *testing.B) {
	for _, sc := range shadersBySize {
		b.Run(sc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(sc.source)))
			b.ResetTimer()

			var decls []glsl.Declaration
			for i := 0; i < b.N; i++ {
				var err error
				decls, err = Scan(sc.source)
				if err != nil {
					b.Fatalf("scan failed: %v", err)
				}
			}
			runtime.KeepAlive(decls)
		})
	}
}

// BenchmarkReflect benchmarks reflection alone, on pre-scanned declarations.
func BenchmarkReflect(b *testing.B) {
	decls, err := Scan(shaderLargeFragment)
	if err != nil {
		b.Fatalf("scan failed: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var info *binding.StageInfo
	for i := 0; i < b.N; i++ {
		info, err = binding.Reflect(binding.StageFragment, decls)
		if err != nil {
			b.Fatalf("reflect failed: %v", err)
		}
	}
	runtime.KeepAlive(info)
}

// BenchmarkLoadProgram benchmarks the concurrent load, reflect and link
// pipeline from an in-memory file system.
func BenchmarkLoadProgram(b *testing.B) {
	fsys := fstest.MapFS{
		"pbr.vert": {Data: []byte(shaderLargeVertex)},
		"pbr.frag": {Data: []byte(shaderLargeFragment)},
	}
	ctx := context.Background()
	b.ReportAllocs()
	b.SetBytes(int64(len(shaderLargeVertex) + len(shaderLargeFragment)))
	b.ResetTimer()

	var prog *Program
	for i := 0; i < b.N; i++ {
		var err error
		prog, err = LoadProgram(ctx, fsys, "pbr.vert", "pbr.frag")
		if err != nil {
			b.Fatalf("load failed: %v", err)
		}
	}
	runtime.KeepAlive(prog)
}
