package models

// CreateMealRequest is the body of POST /api/create-meal.
type CreateMealRequest struct {
	Meal       string  `json:"meal"`
	Cuisine    string  `json:"cuisine"`
	Price      float64 `json:"price"`
	Difficulty string  `json:"difficulty"`
}

// PrepCombatantRequest is the body of POST /api/prep-combatant.
type PrepCombatantRequest struct {
	Meal string `json:"meal"`
}

// AccountRequest is the body of create-account and login.
type AccountRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdatePasswordRequest is the body of PUT /api/update-password.
type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}
