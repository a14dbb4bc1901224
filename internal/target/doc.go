// Package target resolves user supplied target specifications into the
// percent-encoded paths understood by the Obsidian Local REST API.
//
// A target is either a periodic shorthand (daily, weekly, monthly,
// quarterly, yearly), which maps to /periodic/<name>/, or a path relative to
// the vault root, which maps to /vault/<encoded segments>.
package target
