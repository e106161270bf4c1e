package entity

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"category_name"`
	Image string `json:"category_image"`
}
