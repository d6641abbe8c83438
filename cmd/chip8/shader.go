package main

const vertex = `
#version 420

in  vec3 vertPos;
in  vec2 vertTexCoord;
out vec2 fragTexCoord;

void main() {
    fragTexCoord = vertTexCoord;
    gl_Position  = vec4(vertPos, 1);
}
`

const fragment = `
#version 420

layout (binding = 0) uniform sampler2D display;

in  vec2 fragTexCoord;
out vec4 outputColor;

void main() {
    // The framebuffer texture holds 0x00 or 0xff per pixel in the red
    // channel. Lit pixels render white.
    float p = texture2D(display, fragTexCoord).r;
    outputColor = vec4(vec3(p), 1);
}
`
