// Package classes provides lint rules for class structure.
//
// Rules in this package:
//   - classes.shadowed_attributes (WPS601): instance attribute shadows a
//     class attribute that has a value
package classes
