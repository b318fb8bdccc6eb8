//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package input

import "golang.org/x/sys/unix"

func adviseSequential(b []byte) error {
	return unix.Madvise(b, unix.MADV_SEQUENTIAL)
}
