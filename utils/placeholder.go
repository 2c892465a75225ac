package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// PlaceholderColors are the background colors used for generated logos
var PlaceholderColors = []string{
	"FF6B6B", "4ECDC4", "45B7D1", "96CEB4", "FFEAA7",
	"DDA0DD", "98D8C8", "F7DC6F", "BB8FCE", "85C1E9",
}

// GenerateLogoPlaceholder generates an initials-based placeholder logo URL
// for brands that have no logo uploaded yet
func GenerateLogoPlaceholder(name string) string {
	initials := GetInitialsFromName(name)

	colorIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(PlaceholderColors))))
	color := PlaceholderColors[colorIndex.Int64()]

	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s&backgroundColor=%s", initials, color)
}

// GetInitialsFromName extracts initials from a brand name
func GetInitialsFromName(name string) string {
	if name == "" {
		return "?"
	}

	words := []rune(name)
	initials := ""

	// Get first character
	initials += string(words[0])

	// Find space and get next character
	for i, char := range words {
		if char == ' ' && i+1 < len(words) {
			initials += string(words[i+1])
			break
		}
	}

	return initials
}
