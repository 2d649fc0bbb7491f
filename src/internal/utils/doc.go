// Package utils holds small file and path helpers shared by the phonebook
// packages.
package utils
