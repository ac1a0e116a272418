package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	storageSizeRe = regexp.MustCompile(`(?i)(\d+)(GB|TB)`)
	memorySizeRe  = regexp.MustCompile(`(?i)(\d+)GB`)
)

// parseStorageGB converts a storage label like "512GB" or "1TB" into
// gigabytes, with 1TB = 1024GB.
func parseStorageGB(size string) (int, error) {
	m := storageSizeRe.FindStringSubmatch(size)
	if m == nil {
		return 0, fmt.Errorf("unparseable storage size %q", size)
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("unparseable storage size %q", size)
	}
	if strings.ToUpper(m[2]) == "TB" {
		return value * 1024, nil
	}
	return value, nil
}

// parseMemoryGB converts a memory label like "24GB" into gigabytes.
func parseMemoryGB(memory string) (int, error) {
	m := memorySizeRe.FindStringSubmatch(memory)
	if m == nil {
		return 0, fmt.Errorf("unparseable memory size %q", memory)
	}
	return strconv.Atoi(m[1])
}

// storageGBOrZero is the permissive variant used when sorting option keys:
// a label that fails to parse sorts as zero rather than erroring, matching
// how an unknown key contributes zero to a price.
func storageGBOrZero(size string) int {
	gb, err := parseStorageGB(size)
	if err != nil {
		return 0
	}
	return gb
}

func memoryGBOrZero(memory string) int {
	gb, err := parseMemoryGB(memory)
	if err != nil {
		return 0
	}
	return gb
}
