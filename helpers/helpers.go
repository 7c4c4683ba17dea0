package helpers

import (
	"fmt"
	"os"
	"os/user"
)

func GetHome() string {
	usr, err := user.Current()
	if err != nil {
		panic(fmt.Sprintf("Failed to determine user's home directory, error: '%s'\n", err.Error()))
	}
	return usr.HomeDir
}

func EnsurePath(pathName string) error {
	if _, err := os.Stat(pathName); os.IsNotExist(err) {
		err = os.MkdirAll(pathName, 0755)
		if err != nil {
			return err
		}
	}
	return nil
}

func FileExists(pathName string) bool {
	if _, err := os.Stat(pathName); err == nil {
		return true
	}
	return false
}
