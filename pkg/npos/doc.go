// Package npos holds the public contracts shared by the npos packages:
// the Logger interface, sentinel errors, exit codes and session defaults.
package npos
