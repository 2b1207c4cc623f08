// Package internaldefs holds the shared counter name table used by the
// Prometheus and OTel exporters, so both emit identical metric names.
package internaldefs
