package renderer

// Default GLSL sources implementing the uniform contract in engine/shaderstate.
// Any custom program substituted for these must declare the same uniform names.

// DefaultVertexShader transforms positions by projection * view * model and
// forwards normals and UV-scaled texture coordinates.
const DefaultVertexShader = `#version 410 core
layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec3 inNormal;
layout (location = 2) in vec2 inTexCoord;

out vec3 fragPosition;
out vec3 fragNormal;
out vec2 fragTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

void main()
{
    fragPosition = vec3(model * vec4(inPosition, 1.0));
    fragNormal = mat3(transpose(inverse(model))) * inNormal;
    fragTexCoord = inTexCoord * UVscale;
    gl_Position = projection * view * vec4(fragPosition, 1.0);
}
`

// DefaultFragmentShader implements the Phong lighting model over the
// material struct and the four-element lightSources array, selecting between
// a sampled texture and a flat color via bUseTexture.
const DefaultFragmentShader = `#version 410 core
in vec3 fragPosition;
in vec3 fragNormal;
in vec2 fragTexCoord;

out vec4 outColor;

struct Material {
    vec3 diffuseColor;
    vec3 specularColor;
    float shininess;
    vec3 ambientColor;
    float ambientStrength;
};

struct LightSource {
    vec3 position;
    vec3 ambientColor;
    vec3 diffuseColor;
    vec3 specularColor;
    float focalStrength;
    float specularIntensity;
};

#define TOTAL_LIGHTS 4

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[TOTAL_LIGHTS];

vec3 shade(LightSource lightSource, vec3 baseColor, vec3 normal, vec3 viewDir)
{
    vec3 ambient = lightSource.ambientColor * material.ambientStrength * material.ambientColor;

    vec3 lightDir = normalize(lightSource.position - fragPosition);
    float diff = max(dot(normal, lightDir), 0.0);
    vec3 diffuse = diff * lightSource.diffuseColor * material.diffuseColor;

    vec3 reflectDir = reflect(-lightDir, normal);
    float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess * lightSource.focalStrength);
    vec3 specular = spec * lightSource.specularIntensity * lightSource.specularColor * material.specularColor;

    return (ambient + diffuse + specular) * baseColor;
}

void main()
{
    vec4 base = bUseTexture ? texture(objectTexture, fragTexCoord) : objectColor;

    if (!bUseLighting) {
        outColor = base;
        return;
    }

    vec3 normal = normalize(fragNormal);
    vec3 viewDir = normalize(viewPosition - fragPosition);

    vec3 lit = vec3(0.0);
    for (int i = 0; i < TOTAL_LIGHTS; i++) {
        lit += shade(lightSources[i], base.rgb, normal, viewDir);
    }
    outColor = vec4(lit, base.a);
}
`
