package renderer

// Lambert pass. Normals and light directions are in world space.
const sceneVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uView;
uniform mat4 uProjection;
uniform mat4 uNormalMatrix;

out vec3 vNormal;

void main() {
    vNormal = mat3(uNormalMatrix) * aNormal;
    gl_Position = uProjection * uView * uModel * vec4(aPos, 1.0);
}
`

const sceneFragmentShader = `
#version 410 core

#define MAX_LIGHTS 4
#define KIND_DIRECTIONAL 0
#define KIND_AMBIENT 1

in vec3 vNormal;

uniform vec3 uColor;
uniform int uLightCount;
uniform int uLightKind[MAX_LIGHTS];
uniform vec3 uLightDir[MAX_LIGHTS];
uniform vec3 uLightColor[MAX_LIGHTS];

out vec4 FragColor;

void main() {
    vec3 n = normalize(vNormal);
    vec3 light = vec3(0.0);
    for (int i = 0; i < uLightCount; i++) {
        if (uLightKind[i] == KIND_AMBIENT) {
            light += uLightColor[i];
        } else {
            light += uLightColor[i] * max(dot(n, uLightDir[i]), 0.0);
        }
    }
    FragColor = vec4(uColor * light, 1.0);
}
`

// Blit pass drawing the offscreen colour texture over the whole viewport.
const blitVertexShader = `
#version 410 core

out vec2 vUV;

void main() {
    vec2 pos = vec2((gl_VertexID << 1) & 2, gl_VertexID & 2);
    vUV = pos;
    gl_Position = vec4(pos * 2.0 - 1.0, 0.0, 1.0);
}
`

const blitFragmentShader = `
#version 410 core

in vec2 vUV;

uniform sampler2D uTexture;

out vec4 FragColor;

void main() {
    FragColor = texture(uTexture, vUV);
}
`
