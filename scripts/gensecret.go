package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
)

// Prints a random value for SECRET_KEY. The key signs flash cookies, so
// rotating it only drops messages that have not been shown yet.
func main() {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	fmt.Printf("SECRET_KEY=%s\n", hex.EncodeToString(key))
}
