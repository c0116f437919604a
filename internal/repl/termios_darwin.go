//go:build darwin
// +build darwin

package repl

import "golang.org/x/sys/unix"

const getTermiosIoctl = unix.TIOCGETA
