// Package mmfile maps policy files into memory where the platform allows it.
package mmfile
