//go:build !unix

package out

import "os"

var (
	pauseSignal  os.Signal
	resumeSignal os.Signal
)
