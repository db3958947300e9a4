package internal

// Version is the version of the similarwords tools
const Version = "0.3.0"
