package api

import rentora "github.com/rentora/rentora-go"

// ErrorResponse is the error body. The field name matches what the client
// parses first.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the /health body.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// AuthenticateRequest are the login credentials.
type AuthenticateRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        string `json:"role" binding:"required"`
}

// VerifyRequest confirms a registration.
type VerifyRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// ResendRequest asks for a fresh verification code.
type ResendRequest struct {
	Email string `json:"email" binding:"required"`
}

// pageOf slices items into the pagination envelope the client expects.
func pageOf[T any](items []T, page, size int) rentora.Page[T] {
	if size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	content := items[start:end]
	return rentora.Page[T]{
		Content:       content,
		TotalPages:    totalPages,
		TotalElements: int64(total),
		Size:          size,
		Number:        page,
		First:         page == 0,
		Last:          page >= totalPages-1,
		Empty:         len(content) == 0,
	}
}
