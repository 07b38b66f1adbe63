package api

// RegisterRequest defines the payload for POST /users.
type RegisterRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,max=255,email"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
	Phone    string `json:"phone"    validate:"required,min=8,max=20"`
}

// RegisterResponse is returned by a successful registration.
type RegisterResponse struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// LoginRequest defines the payload for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,max=255,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
}

// UpdateUserRequest defines the payload for PATCH /users/{userId}.
// Absent keys are left unchanged; at least one key is required.
type UpdateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=2,max=50"`
	Email    *string `json:"email"    validate:"omitempty,max=255,email"`
	Password *string `json:"password" validate:"omitempty,min=6,maxbytes=72"`
	Phone    *string `json:"phone"    validate:"omitempty,min=8,max=20"`
}

// CreateRestaurantRequest defines the payload for POST /restaurants.
type CreateRestaurantRequest struct {
	Name    string   `json:"name"    validate:"required,min=2,max=100"`
	Address string   `json:"address" validate:"required,min=5,max=200"`
	Rating  *float64 `json:"rating"  validate:"required,gte=0,lte=5"`
	Cuisine string   `json:"cuisine" validate:"required,min=2,max=50"`
	MenuID  string   `json:"menuId"  validate:"required,max=255"`
	Hours   string   `json:"hours"   validate:"required,min=5,max=100"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
