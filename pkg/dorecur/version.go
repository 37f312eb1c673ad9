// Package dorecur holds project-wide metadata.
package dorecur

// Version is the dorecur release version.
const Version = "v0.2.0"
