// Package logger records shell events as newline delimited JSON and builds
// reports from the recorded logs.
package logger
