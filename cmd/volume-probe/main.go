package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mydehq/gamedesc/internal/entry"
)

func main() {
	root := "."
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		filename := filepath.Base(path)
		switch n, ok := entry.VolumeIndex(filename); {
		case entry.IsPlaylist(filename):
			fmt.Printf("File: %s\nVOLUME: playlist\n\n", filename)
		case ok:
			fmt.Printf("File: %s\nVOLUME: %d\n\n", filename, n)
		default:
			fmt.Printf("File: %s\nVOLUME: -\n\n", filename)
		}
		return nil
	})

	if err != nil {
		fmt.Printf("Error walking path: %v\n", err)
		os.Exit(1)
	}
}
