//go:build debug
// +build debug

package tesseract4d

import (
	"fmt"
	"sync"
)

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	fmt.Printf("[DEBUG] "+format+"\n", args...)
}

var once sync.Once

func DebugLogOnce(format string, args ...interface{}) {
	once.Do(func() {
		if !Debug {
			return
		}
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	})
}
