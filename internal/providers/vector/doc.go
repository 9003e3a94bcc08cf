// Package vector exposes the vec2 library as a tool provider.
//
// Tools are grouped in modules: codec (create, parse, render), arithmetic
// (add, subtract, multiply, divide, invert, normalize) and geometry
// (rotation, dot/cross products, angles, distances, equality). Every tool
// accepts an optional "system" parameter naming the operator system;
// unrecognized names fall back to the process default, matching the vec2
// registry semantics.
package vector
