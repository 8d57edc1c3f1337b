package domain

// Inputs collected by the role screens. Free-text fields exclude the record
// delimiter (0x2C = ',') because the storage format cannot escape it.

type RegisterRequest struct {
	Username        string `validate:"required,excludesall=0x2C"`
	Password        string `validate:"required,excludesall=0x2C"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

type StaffInput struct {
	Username string `validate:"required,excludesall=0x2C"`
	Password string `validate:"required,excludesall=0x2C"`
	Role     Role   `validate:"required,eq=Manager|eq=Chef"`
}

// StaffUpdate leaves a field unchanged when it is empty.
type StaffUpdate struct {
	NewUsername string `validate:"omitempty,excludesall=0x2C"`
	NewPassword string `validate:"omitempty,excludesall=0x2C"`
	NewRole     Role   `validate:"omitempty,eq=Manager|eq=Chef"`
}

type ProfileUpdate struct {
	NewUsername     string `validate:"omitempty,excludesall=0x2C"`
	NewPassword     string `validate:"omitempty,excludesall=0x2C"`
	ConfirmPassword string `validate:"eqfield=NewPassword"`
}

// Item ids additionally exclude the order-line separators (0x3A ':' and
// 0x3B ';'); an id containing either would corrupt every encoded lines
// field that references it.
type MenuItemInput struct {
	ID    string `validate:"required,excludesall=0x2C0x3A0x3B"`
	Name  string `validate:"required,excludesall=0x2C"`
	Price string `validate:"required,excludesall=0x2C"`
}

// MenuItemUpdate leaves a field unchanged when it is empty.
type MenuItemUpdate struct {
	NewName  string `validate:"omitempty,excludesall=0x2C"`
	NewPrice string `validate:"omitempty,excludesall=0x2C"`
}

type OrderLineInput struct {
	ItemID   string
	Quantity int
}

type IngredientInput struct {
	Name     string `validate:"required,excludesall=0x2C"`
	Quantity int    `validate:"gt=0"`
}

type FeedbackInput struct {
	OrderID  string `validate:"omitempty,excludesall=0x2C"`
	Rating   int    `validate:"min=1,max=5"`
	Comments string `validate:"required,excludesall=0x2C"`
}
