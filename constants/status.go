package constants

// Operator roles carried in the auth token.
const (
	RoleReceptionist = 0
	RoleManager      = 1
	RoleAdmin        = 2
)

// Payment status reported by the processor.
const (
	PaymentStatusPending  = 0
	PaymentStatusSuccess  = 1
	PaymentStatusFailed   = 2
	PaymentStatusRefunded = 3
)

// Pagination defaults shared by the list endpoints.
const (
	DefaultPage  = 0
	DefaultLimit = 10
)
