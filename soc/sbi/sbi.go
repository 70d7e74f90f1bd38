// Package sbi wraps the supervisor binary interface calls of the RISC-V
// firmware (OpenSBI on this board): timer programming, inter-processor
// interrupts, hart lifecycle and system reset.
package sbi

import "errors"

// Extension and function ids of the SBI calls in use.
const (
	eidTime      = 0x54494D45 // "TIME"
	fidSetTimer  = 0

	eidIPI     = 0x735049 // "sPI"
	fidSendIPI = 0

	eidHSM          = 0x48534D // "HSM"
	fidHartStart    = 0
	fidHartStop     = 1
	fidHartGetState = 2

	eidSRST           = 0x53525354 // "SRST"
	fidSystemReset    = 0
	resetShutdown     = 0
	resetColdReboot   = 1
	reasonNoReason    = 0
)

// Errors returned by the firmware, per the SBI specification.
var (
	ErrFailed         = errors.New("sbi: failed")
	ErrNotSupported   = errors.New("sbi: not supported")
	ErrInvalidParam   = errors.New("sbi: invalid parameter")
	ErrDenied         = errors.New("sbi: denied")
	ErrInvalidAddress = errors.New("sbi: invalid address")
	ErrAlreadyAvail   = errors.New("sbi: already available")
	ErrAlreadyStarted = errors.New("sbi: already started")
	ErrAlreadyStopped = errors.New("sbi: already stopped")
)

func sbiError(code int64) error {
	switch code {
	case 0:
		return nil
	case -1:
		return ErrFailed
	case -2:
		return ErrNotSupported
	case -3:
		return ErrInvalidParam
	case -4:
		return ErrDenied
	case -5:
		return ErrInvalidAddress
	case -6:
		return ErrAlreadyAvail
	case -7:
		return ErrAlreadyStarted
	case -8:
		return ErrAlreadyStopped
	default:
		return ErrFailed
	}
}
