// Command server runs the planarkit tool service: the vec2 library exposed
// over HTTP with health, discovery, execution and metrics endpoints.
package main
