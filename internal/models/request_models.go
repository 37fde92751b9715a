package models

// UpsertUserRequest is the body for POST /users. Email is the upsert key.
type UpsertUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name,omitempty"`
	PhotoURL string `json:"photoURL,omitempty"`
	Role     string `json:"role,omitempty"`
}

// CreateCourseRequest is the body for POST /courses. OwnerID becomes the
// course owner and is never reassigned afterwards.
type CreateCourseRequest struct {
	OwnerID     string  `json:"ownerId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageURL,omitempty"`
	Price       float64 `json:"price" binding:"required,gte=0"`
}

// UpdateCourseRequest is the body for PATCH /courses/:id. Pointers
// distinguish "clear this field" from "field not provided". OwnerID is
// deliberately absent: ownership cannot be reassigned.
type UpdateCourseRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Category    *string  `json:"category,omitempty"`
	ImageURL    *string  `json:"imageURL,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// CreatePaymentIntentRequest is the body for POST /create-payment-intent.
// Price is in major units; the gateway receives price*100 truncated to an
// integer minor-unit amount.
type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// RecordPaymentRequest is the body for POST /payments.
type RecordPaymentRequest struct {
	Email         string   `json:"email" binding:"required,email"`
	UserID        string   `json:"userId" binding:"required"`
	Price         float64  `json:"price" binding:"required,gte=0"`
	TransactionID string   `json:"transactionId,omitempty"`
	Category      string   `json:"category" binding:"required"`
	DataIDs       []string `json:"dataIDs" binding:"required,min=1"`
}
