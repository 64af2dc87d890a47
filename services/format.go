package services

import (
	"fmt"
	"strconv"
)

func formatInt(n int64) string {
	return strconv.FormatInt(n, 10)
}

func formatAmount(amount float64) string {
	return fmt.Sprintf("₦%.2f", amount)
}
