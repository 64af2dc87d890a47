package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// ProcessPaymentStub simulates a successful charge against the payment
// gateway and returns a transaction reference.
func ProcessPaymentStub(amount float64, method string) (string, error) {
	return fmt.Sprintf("PAY-%s", uuid.NewString()), nil
}
