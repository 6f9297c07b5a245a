// Package hugo implements the ContentStore port on a directory of Hugo
// markdown files, one per observation id. Each file carries a one-line
// JSON frontmatter block between --- delimiters and an HTML body wrapped
// in unsafe shortcode markers.
package hugo
