/*
Package dvid provides types, constants and functions that have no other dependencies
and can be used by all packages within blockdup: logging, coordinates, command-line
parsing and the error kinds shared across packages.
*/
package dvid
