package booking

type PaymentMethod string

const (
	PaymentOnline PaymentMethod = "online"
	PaymentCash   PaymentMethod = "cash"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

// Payment is the outcome reported by the (mocked) payment step.
type Payment struct {
	Method PaymentMethod
	Status PaymentStatus
}

// NewPayment derives the status from the method when status is empty:
// online payments are captured up front, cash is settled at the venue.
func NewPayment(method, status string) (Payment, error) {
	m := PaymentMethod(method)
	switch m {
	case PaymentOnline, PaymentCash:
	default:
		return Payment{}, ErrInvalidPaymentMethod
	}

	if status == "" {
		if m == PaymentOnline {
			return Payment{Method: m, Status: PaymentPaid}, nil
		}
		return Payment{Method: m, Status: PaymentPending}, nil
	}

	s := PaymentStatus(status)
	switch s {
	case PaymentPaid, PaymentPending:
	default:
		return Payment{}, ErrInvalidPaymentStatus
	}
	return Payment{Method: m, Status: s}, nil
}
