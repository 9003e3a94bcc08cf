// Package utils provides input validation for JSON documents supplied
// through tool parameters: size, syntax and nesting-depth limits.
package utils
