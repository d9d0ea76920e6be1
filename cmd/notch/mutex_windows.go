//go:build windows

package main

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"

	"github.com/TheBoredTeam/boring.notch-sub003/config"
	"github.com/TheBoredTeam/boring.notch-sub003/util/log"
)

var mutex windows.Handle

// acquireLock creates a named mutex; an existing one means another instance.
func acquireLock() (bool, error) {
	name, err := windows.UTF16PtrFromString(config.AppName + "_SingleInstanceMutex")
	if err != nil {
		return false, err
	}

	mutex, err = windows.CreateMutex(nil, false, name)
	if err != nil {
		if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
			return false, nil
		}
		return false, fmt.Errorf("failed to create mutex: %w", err)
	}
	return true, nil
}

// releaseLock closes the mutex handle.
func releaseLock() {
	if mutex == 0 {
		return
	}
	if err := windows.CloseHandle(mutex); err != nil {
		log.Printf("Failed to close mutex handle: %v", err)
	}
}
