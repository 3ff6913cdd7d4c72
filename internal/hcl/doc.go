// Package hcl provides the concrete HCL implementation for the analysis
// definition loading interface defined in the `config` package. It is
// responsible for file discovery, HCL parsing, and CTY-to-Go data binding
// of the `analysis` block attributes.
package hcl
