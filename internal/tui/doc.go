// Package tui provides the optional full-screen rendition of both drills.
//
// It applies the same validation rules and computations as the line-oriented
// sessions in package cli, showing rejection messages inline instead of
// reprinting the question.
package tui
