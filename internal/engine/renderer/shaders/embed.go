// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PhongVertexShader transforms lit geometry and passes world-space position
// and normal to the fragment stage.
//
//go:embed phong.vert
var PhongVertexShader string

// PhongFragmentShader shades with the material and the scene light.
//
//go:embed phong.frag
var PhongFragmentShader string

// MarkerVertexShader is the vertex shader for the light marker.
//
//go:embed marker.vert
var MarkerVertexShader string

// MarkerFragmentShader fills the light marker with the light color.
//
//go:embed marker.frag
var MarkerFragmentShader string
