package function

const pythonTemplate = `import time

MEMORY_MIB = {{.MemoryMiB}}


def handler(event=None, context=None):
    # Function {{.Name}}
    buffer = bytearray(MEMORY_MIB * 1024 * 1024)
    t = time.time()
    # Busy wait so we consume cpu
    while (time.time() - t) < {{.Runtime}}:
        pass
    return len(buffer)
`

const goTemplate = `package main

import (
	"fmt"
	"time"
)

const (
	runtimeSeconds = {{.Runtime}}
	memoryMiB      = {{.MemoryMiB}}
)

// {{.Name}}
func main() {
	buffer := make([]byte, memoryMiB*1024*1024)
	for i := 0; i < len(buffer); i += 4096 {
		buffer[i] = byte(i)
	}

	start := time.Now()
	deadline := time.Duration(runtimeSeconds * float64(time.Second))
	for time.Since(start) < deadline {
	}

	fmt.Println(len(buffer))
}
`
