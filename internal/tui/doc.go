// Package tui implements the bank clients front-ends: a line-oriented
// console menu and a bubbletea full-screen program over the same client
// service.
package tui
