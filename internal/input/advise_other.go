//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package input

func adviseSequential([]byte) error {
	return nil
}
