package helpers

import "fmt"

const (
	VersionMajor = 0
	VersionMinor = 2
	VersionPatch = 0
)

func Version() string {
	return fmt.Sprintf("%d.%d.%d", VersionMajor, VersionMinor, VersionPatch)
}
