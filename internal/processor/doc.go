// Package processor contains the logic behind the command line tools. It
// wires input files, phonemizer backends, dictionaries and word groups
// together and writes the results.
package processor
