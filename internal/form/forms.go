package form

// LoginForm is the credentials record posted to the login page.
type LoginForm struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Next     string `json:"next" form:"next"`
}

// ManufacturerForm creates or updates a manufacturer.
type ManufacturerForm struct {
	Name    string `json:"name" form:"name" validate:"required,max=255"`
	Country string `json:"country" form:"country" validate:"max=255"`
}

// CarForm creates or updates a car.
type CarForm struct {
	Model          string `json:"model" form:"model" validate:"required,max=255"`
	ManufacturerID uint   `json:"manufacturer_id" form:"manufacturer_id" validate:"required"`
}
