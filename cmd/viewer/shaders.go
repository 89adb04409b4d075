//go:build cgo

package main

// Attribute locations shared by meshShader.
const (
	attribPos    = 0
	attribNormal = 1
	attribTex    = 2
	attribColor  = 3
)

const meshVertex = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aTex;
layout (location = 3) in vec4 aColor;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vPos;
out vec3 vNormal;
out vec2 vTex;
out vec4 vColor;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vPos = world.xyz;
	vNormal = mat3(uModel) * aNormal;
	vTex = aTex;
	vColor = aColor;
	gl_Position = uProj * uView * world;
}
` + "\x00"

const meshFragment = `#version 330 core
in vec3 vPos;
in vec3 vNormal;
in vec2 vTex;
in vec4 vColor;

uniform sampler2D uTex;
uniform bool uUseTex;
uniform bool uLit;
uniform vec3 uLightPos;

out vec4 FragColor;

void main() {
	vec4 color = uUseTex ? texture(uTex, vTex) : vColor;
	if (!uLit) {
		FragColor = color;
		return;
	}
	float ambient = 0.15;
	vec3 n = normalize(vNormal);
	vec3 l = normalize(uLightPos - vPos);
	float diffuse = max(dot(n, l), 0.0);
	FragColor = vec4(color.rgb * (ambient + diffuse), color.a);
}
` + "\x00"

const skyVertex = `#version 330 core
layout (location = 0) in vec3 aPos;

uniform mat4 uView;
uniform mat4 uProj;

out vec3 vDir;

void main() {
	vDir = aPos;
	// Drop the camera translation so the box never moves with respect to the eye.
	vec4 pos = uProj * mat4(mat3(uView)) * vec4(aPos, 1.0);
	gl_Position = pos.xyww;
}
` + "\x00"

const skyFragment = `#version 330 core
in vec3 vDir;

uniform samplerCube uSky;

out vec4 FragColor;

void main() {
	FragColor = texture(uSky, vDir);
}
` + "\x00"
