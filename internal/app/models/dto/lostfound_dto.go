package dto

// CreateItemRequest represents a lost or found item posting. An optional image
// arrives as multipart form data alongside these fields.
type CreateItemRequest struct {
	Title       string  `form:"title" binding:"required"`
	Description *string `form:"description"`
	Location    *string `form:"location"`
	Category    string  `form:"category" binding:"omitempty,oneof=electronics books id_cards clothing other"`
	ItemType    string  `form:"itemType" binding:"required,oneof=lost found"`
}
