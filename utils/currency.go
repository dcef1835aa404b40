package utils

import "fmt"

// FriendlyCurrency converts cents to a readable dollar format.
// Display formatting is one-way; it is never parsed back.
func FriendlyCurrency(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}
