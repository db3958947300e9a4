// Package cli provides command-line interface setup and configuration
// for the similarwords tools. It handles flag parsing, command creation,
// logging and configuration management using cobra, viper and zerolog.
package cli
