//go:build linux
// +build linux

package repl

import "golang.org/x/sys/unix"

const getTermiosIoctl = unix.TCGETS
