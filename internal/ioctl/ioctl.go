// Package ioctl encodes Linux ioctl request numbers and issues the system call.
package ioctl

import (
	"fmt"
	"reflect"
	"syscall"
)

// Mode is the data direction of a request, seen from user space.
type Mode uint8

// Modes, matching _IOC_NONE, _IOC_WRITE and _IOC_READ.
const (
	None Mode = iota
	Write
	Read
)

// Field layout of a request number (asm-generic/ioctl.h).
const (
	numberBits = 16 // type << 8 | nr
	sizeBits   = 14
	sizeShift  = numberBits
	modeShift  = numberBits + sizeBits
)

// Command is an encoded ioctl request number.
type Command uintptr

// Mode returns the request direction.
func (c Command) Mode() Mode {
	return Mode(c >> modeShift & 0x03)
}

// Size returns the size of the argument in bytes.
func (c Command) Size() int {
	return int(c >> sizeShift & (1<<sizeBits - 1))
}

// Number returns the request type and number.
func (c Command) Number() uintptr {
	return uintptr(c & (1<<numberBits - 1))
}

func (c Command) String() string {
	var str string
	if c.Mode()&Write != 0 {
		str += " write"
	}
	if c.Mode()&Read != 0 {
		str += " read"
	}
	return fmt.Sprintf("ioctl%s (%d bytes) 0x%04x", str, c.Size(), c.Number())
}

// Encode builds a request number from its direction, argument size and type/number.
func Encode(mode Mode, size uint16, number uintptr) Command {
	return Command(mode)<<modeShift | Command(size)<<sizeShift | Command(number)
}

// Pointer encodes a request whose argument is the value ref points to.
func Pointer(mode Mode, ref any, number uintptr) Command {
	size := uint16(reflect.TypeOf(ref).Elem().Size())
	return Encode(mode, size, number)
}

// Do issues the request on fd with ptr, a pointer or nil, as argument.
func Do(fd uintptr, command Command, ptr any) error {
	var p uintptr
	if ptr != nil {
		p = reflect.ValueOf(ptr).Pointer()
	}

	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, fd, uintptr(command), p)
	if errno != 0 {
		return fmt.Errorf("%s failed: %w", command, errno)
	}
	return nil
}
