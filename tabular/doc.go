// Package tabular loads label-encoded categorical datasets from CSV
// files. It is the injected stand-in for whatever columnar format the
// surrounding system stores its splits in; transformers only ever see
// the resulting core.Dataset.
package tabular
