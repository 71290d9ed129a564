// Package species is the parent of the built-in species packages. Each
// subpackage registers itself with the species registry when imported.
package species
