// Package logger records shell session events as newline delimited
// JSON, one object per event.
package logger
