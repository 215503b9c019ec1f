//go:build !unix

package file

import "os"

// Without flock the in-process mutex is the only serialization.
func lock(*os.File) error { return nil }

func unlock(*os.File) error { return nil }
