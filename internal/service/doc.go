// Package service implements the tool provider registry: registration,
// discovery by intent, and execution routing on namespaced tool IDs.
package service
